/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package builder provides a fluent API for assembling value.Value object
// and array trees, adapted from the teacher's ContainerBuilder.
package builder

import (
	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

// ObjectBuilder provides a fluent API for constructing an object Value.
// It allows chaining Set calls to populate keys before building the
// final value.
//
// Example usage:
//
//	v, err := builder.NewObject().
//	    Set("name", value.String("widget")).
//	    Set("count", value.Int64(3)).
//	    Build()
type ObjectBuilder struct {
	handle storage.Handle
	obj    *value.Object
	err    error
}

// NewObject creates a new ObjectBuilder bound to the default resource.
func NewObject() *ObjectBuilder {
	return NewObjectIn(storage.NewDefaultHandle())
}

// NewObjectIn creates a new ObjectBuilder bound to h.
func NewObjectIn(h storage.Handle) *ObjectBuilder {
	return &ObjectBuilder{handle: h, obj: value.NewObject(h)}
}

// Set assigns key to v, copying v into this builder's resource if it was
// allocated against a different one. Returns the builder for chaining.
func (b *ObjectBuilder) Set(key string, v value.Value) *ObjectBuilder {
	if b.err != nil {
		return b
	}
	if !v.Handle().Equal(b.handle) {
		v = v.CopyTo(b.handle)
	}
	b.obj.Set(key, v)
	return b
}

// SetMaxLoadFactor overrides the object's rehash threshold before Build.
// Returns the builder for method chaining.
func (b *ObjectBuilder) SetMaxLoadFactor(f float64) *ObjectBuilder {
	if b.err == nil {
		b.obj.SetMaxLoadFactor(f)
	}
	return b
}

// Build returns the constructed object Value, or the first error
// encountered while chaining Set calls.
func (b *ObjectBuilder) Build() (value.Value, error) {
	if b.err != nil {
		return value.Value{}, b.err
	}
	return value.FromObject(b.obj), nil
}

// ArrayBuilder provides a fluent API for constructing an array Value.
type ArrayBuilder struct {
	handle storage.Handle
	arr    *value.Array
	err    error
}

// NewArray creates a new ArrayBuilder bound to the default resource.
func NewArray() *ArrayBuilder {
	return NewArrayIn(storage.NewDefaultHandle())
}

// NewArrayIn creates a new ArrayBuilder bound to h.
func NewArrayIn(h storage.Handle) *ArrayBuilder {
	return &ArrayBuilder{handle: h, arr: value.NewArray(h)}
}

// Append adds vs to the end of the array in order. Returns the builder
// for method chaining.
func (b *ArrayBuilder) Append(vs ...value.Value) *ArrayBuilder {
	if b.err != nil {
		return b
	}
	for _, v := range vs {
		if !v.Handle().Equal(b.handle) {
			v = v.CopyTo(b.handle)
		}
		b.arr.PushBack(v)
	}
	return b
}

// Reserve pre-sizes the underlying storage for at least n elements.
// Returns the builder for method chaining.
func (b *ArrayBuilder) Reserve(n int) *ArrayBuilder {
	if b.err == nil {
		b.arr.Reserve(n)
	}
	return b
}

// Build returns the constructed array Value, or the first error
// encountered while chaining Append calls.
func (b *ArrayBuilder) Build() (value.Value, error) {
	if b.err != nil {
		return value.Value{}, b.err
	}
	return value.FromArray(b.arr), nil
}
