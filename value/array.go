/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package value

import (
	"github.com/kcenon/jsonvalue/storage"
)

// Array is a contiguous, allocator-bound sequence of Value (C4). Every
// element's storage handle is kept equal to the array's own handle: Append
// and Insert rebind a mismatched element's subtree into the array's
// resource before storing it, per spec.md §3/§4.4.
type Array struct {
	handle   storage.Handle
	elements []Value
}

// NewArray returns an empty Array bound to handle.
func NewArray(handle storage.Handle) *Array {
	return &Array{handle: handle}
}

// NewArrayOf returns an Array bound to handle, containing copies of vs
// rebound into handle.
func NewArrayOf(handle storage.Handle, vs ...Value) *Array {
	a := &Array{handle: handle, elements: make([]Value, 0, len(vs))}
	for _, v := range vs {
		a.Append(v)
	}
	return a
}

// Handle returns the array's storage handle.
func (a *Array) Handle() storage.Handle { return a.handle }

// Len reports the number of elements.
func (a *Array) Len() int { return len(a.elements) }

// Empty reports whether the array has no elements.
func (a *Array) Empty() bool { return len(a.elements) == 0 }

// Cap reports the current storage capacity.
func (a *Array) Cap() int { return cap(a.elements) }

// Reserve grows the backing slice's capacity to at least n, without
// changing Len.
func (a *Array) Reserve(n int) {
	if cap(a.elements) >= n {
		return
	}
	grown := make([]Value, len(a.elements), n)
	copy(grown, a.elements)
	a.elements = grown
}

// At returns the element at pos. Precondition: 0 <= pos < Len().
func (a *Array) At(pos int) Value { return a.elements[pos] }

// TryAt returns the element at pos and a nil error, or a zero Value and an
// ErrOutOfRange error if pos is out of range — the non-precondition-violating counterpart to At,
// corresponding to spec.md §4.2's "index at raises out-of-range".
func (a *Array) TryAt(pos int) (Value, error) {
	if pos < 0 || pos >= len(a.elements) {
		return Value{}, newError(ErrOutOfRange, "array index")
	}
	return a.elements[pos], nil
}

// Front returns the first element. Precondition: Len() > 0.
func (a *Array) Front() Value { return a.elements[0] }

// Back returns the last element. Precondition: Len() > 0.
func (a *Array) Back() Value { return a.elements[len(a.elements)-1] }

// rebind returns v unchanged if its handle already equals a's, otherwise a
// deep copy of v rebound into a's handle.
func (a *Array) rebind(v Value) Value {
	if v.handle.Equal(a.handle) {
		return v
	}
	return v.CopyTo(a.handle)
}

// Append adds v to the end of the array, rebinding it into the array's
// resource if necessary.
func (a *Array) Append(v Value) {
	a.elements = append(a.elements, a.rebind(v))
}

// PushBack is an alias for Append, matching the C++ vocabulary spec.md
// uses throughout §4.4.
func (a *Array) PushBack(v Value) { a.Append(v) }

// Insert places v at pos, shifting subsequent elements right. Precondition:
// 0 <= pos <= Len().
func (a *Array) Insert(pos int, v Value) {
	v = a.rebind(v)
	a.elements = append(a.elements, Value{})
	copy(a.elements[pos+1:], a.elements[pos:])
	a.elements[pos] = v
}

// Erase removes the element at pos, shifting subsequent elements left.
// Precondition: 0 <= pos < Len().
func (a *Array) Erase(pos int) {
	copy(a.elements[pos:], a.elements[pos+1:])
	a.elements[len(a.elements)-1] = Value{}
	a.elements = a.elements[:len(a.elements)-1]
}

// PopBack removes the last element. Precondition: Len() > 0.
func (a *Array) PopBack() {
	a.Erase(len(a.elements) - 1)
}

// Clear removes all elements without shrinking capacity.
func (a *Array) Clear() {
	for i := range a.elements {
		a.elements[i] = Value{}
	}
	a.elements = a.elements[:0]
}

// ShrinkToFit reallocates the backing slice to exactly Len() capacity.
func (a *Array) ShrinkToFit() {
	if len(a.elements) == cap(a.elements) {
		return
	}
	trimmed := make([]Value, len(a.elements))
	copy(trimmed, a.elements)
	a.elements = trimmed
}

// Resize changes Len() to n, truncating or padding with null Values bound
// to the array's handle.
func (a *Array) Resize(n int) {
	if n <= len(a.elements) {
		a.elements = a.elements[:n]
		return
	}
	a.Reserve(n)
	for len(a.elements) < n {
		a.elements = append(a.elements, newNull(a.handle))
	}
}

// Each calls fn for every element in order. fn returning false stops
// iteration early.
func (a *Array) Each(fn func(index int, v Value) bool) {
	for i, v := range a.elements {
		if !fn(i, v) {
			return
		}
	}
}

// Clone returns a deep copy of the array under the same handle.
func (a *Array) Clone() *Array {
	return a.CloneTo(a.handle)
}

// CloneTo returns a deep copy of the array rebound into handle.
func (a *Array) CloneTo(handle storage.Handle) *Array {
	out := &Array{handle: handle, elements: make([]Value, len(a.elements))}
	for i, v := range a.elements {
		out.elements[i] = v.CopyTo(handle)
	}
	return out
}
