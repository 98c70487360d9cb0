/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package value

import (
	"github.com/kcenon/jsonvalue/jsonstring"
	"github.com/kcenon/jsonvalue/number"
	"github.com/kcenon/jsonvalue/storage"
)

// Value is the tagged sum over object/array/string/number/boolean/null
// (C6). Exactly one payload field is meaningful at a time, selected by
// kind; every Value owns one storage.Handle, even null and boolean
// variants that carry no other state, so the resource an empty Value was
// built under is never lost across a reset(kind) back to a populated
// variant.
type Value struct {
	kind   Kind
	handle storage.Handle
	b      bool
	num    number.Number
	str    jsonstring.String
	arr    *Array
	obj    *Object
}

// Null returns a null Value bound to the process-wide default resource.
func Null() Value { return newNull(storage.NewDefaultHandle()) }

// NullIn returns a null Value bound to handle.
func NullIn(handle storage.Handle) Value { return newNull(handle) }

func newNull(handle storage.Handle) Value {
	return Value{kind: KindNull, handle: handle}
}

// Bool returns a boolean Value bound to the default resource.
func Bool(b bool) Value { return BoolIn(storage.NewDefaultHandle(), b) }

// BoolIn returns a boolean Value bound to handle.
func BoolIn(handle storage.Handle, b bool) Value {
	return Value{kind: KindBool, handle: handle, b: b}
}

// FromNumber returns a number Value bound to the default resource.
func FromNumber(n number.Number) Value { return FromNumberIn(storage.NewDefaultHandle(), n) }

// FromNumberIn returns a number Value bound to handle.
func FromNumberIn(handle storage.Handle, n number.Number) Value {
	return Value{kind: KindNumber, handle: handle, num: n}
}

// Int64 returns a number Value holding v, bound to the default resource.
func Int64(v int64) Value { return FromNumber(number.FromInt64(v)) }

// Uint64 returns a number Value holding v, bound to the default resource.
func Uint64(v uint64) Value { return FromNumber(number.FromUint64(v)) }

// Double returns a number Value holding v, bound to the default resource.
func Double(v float64) Value { return FromNumber(number.FromDouble(v)) }

// String returns a string Value copying s, bound to the default resource.
func String(s string) Value { return StringIn(storage.NewDefaultHandle(), s) }

// StringIn returns a string Value copying s, bound to handle.
func StringIn(handle storage.Handle, s string) Value {
	return Value{kind: KindString, handle: handle, str: jsonstring.New(handle, s)}
}

// NewArrayValue returns an array Value holding an empty Array bound to
// handle.
func NewArrayValue(handle storage.Handle) Value {
	return Value{kind: KindArray, handle: handle, arr: NewArray(handle)}
}

// NewObjectValue returns an object Value holding an empty Object bound to
// handle.
func NewObjectValue(handle storage.Handle) Value {
	return Value{kind: KindObject, handle: handle, obj: NewObject(handle)}
}

// FromArray wraps an existing *Array as a Value bound to the array's own
// handle.
func FromArray(a *Array) Value {
	return Value{kind: KindArray, handle: a.handle, arr: a}
}

// FromObject wraps an existing *Object as a Value bound to the object's
// own handle.
func FromObject(o *Object) Value {
	return Value{kind: KindObject, handle: o.handle, obj: o}
}

// Kind reports which variant is live.
func (v Value) Kind() Kind { return v.kind }

// Handle returns the value's storage handle.
func (v Value) Handle() storage.Handle { return v.handle }

// IsNull, IsBool, IsNumber, IsString, IsArray, IsObject are total
// observers over the kind tag, per spec.md §4.2.
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsPrimitive reports whether the value is a leaf kind (anything but
// object/array).
func (v Value) IsPrimitive() bool { return v.kind != KindObject && v.kind != KindArray }

// IsStructured reports whether the value is a container kind.
func (v Value) IsStructured() bool { return v.kind == KindObject || v.kind == KindArray }

// IsInt64, IsUint64, IsDouble delegate to the held Number's classification;
// false for any non-number kind.
func (v Value) IsInt64() bool  { return v.kind == KindNumber && v.num.IsInt64() }
func (v Value) IsUint64() bool { return v.kind == KindNumber && v.num.IsUint64() }
func (v Value) IsDouble() bool { return v.kind == KindNumber && v.num.IsDouble() }

// AsBool returns the boolean payload. Precondition: IsBool().
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the Number payload. Precondition: IsNumber().
func (v Value) AsNumber() number.Number { return v.num }

// AsString returns the jsonstring.String payload. Precondition: IsString().
func (v Value) AsString() jsonstring.String { return v.str }

// AsArray returns the *Array payload. Precondition: IsArray().
func (v Value) AsArray() *Array { return v.arr }

// AsObject returns the *Object payload. Precondition: IsObject().
func (v Value) AsObject() *Object { return v.obj }

// GetBool returns the boolean payload, or an ErrExpectedBool error.
func (v Value) GetBool() (bool, error) {
	if !v.IsBool() {
		return false, newError(ErrExpectedBool, v.kind.String())
	}
	return v.b, nil
}

// GetInt64 returns the number payload as int64, or an error if the value
// is not a number representable as a signed 64-bit integer.
func (v Value) GetInt64() (int64, error) {
	if !v.IsNumber() {
		return 0, newError(ErrExpectedSigned, v.kind.String())
	}
	if !v.num.IsInt64() {
		return 0, newError(ErrIntegerOverflow, "value not representable as int64")
	}
	return v.num.Int64(), nil
}

// GetUint64 returns the number payload as uint64, or an error if the value
// is not a number representable as an unsigned 64-bit integer.
func (v Value) GetUint64() (uint64, error) {
	if !v.IsNumber() {
		return 0, newError(ErrExpectedUnsigned, v.kind.String())
	}
	if !v.num.IsUint64() {
		return 0, newError(ErrIntegerOverflow, "value not representable as uint64")
	}
	return v.num.Uint64(), nil
}

// GetDouble returns the number payload as float64, or an error if the
// value is not a number.
func (v Value) GetDouble() (float64, error) {
	if !v.IsNumber() {
		return 0, newError(ErrExpectedFloating, v.kind.String())
	}
	return v.num.Double(), nil
}

// GetString returns the string payload as a Go string, or an error if the
// value is not a string.
func (v Value) GetString() (string, error) {
	if !v.IsString() {
		return "", newError(ErrExpectedString, v.kind.String())
	}
	return v.str.String(), nil
}

// Reset replaces v's contents with an empty value of kind k, preserving
// its storage handle, per spec.md §4.2's reset(kind).
func (v *Value) Reset(k Kind) {
	handle := v.handle
	switch k {
	case KindArray:
		*v = Value{kind: KindArray, handle: handle, arr: NewArray(handle)}
	case KindObject:
		*v = Value{kind: KindObject, handle: handle, obj: NewObject(handle)}
	default:
		*v = Value{kind: k, handle: handle}
	}
}

// Set assigns key => val into v. If v is currently null, it is promoted in
// place to an empty object (an observable side effect, per spec.md §4.2's
// indexing rule); any other non-object kind is a precondition violation
// reported as ErrExpectedObject rather than panicking, since construction
// errors here are much more likely to be caller bugs worth surfacing than
// to need recovery.
func (v *Value) Set(key string, val Value) error {
	if v.kind == KindNull {
		v.Reset(KindObject)
	}
	if v.kind != KindObject {
		return newError(ErrExpectedObject, v.kind.String())
	}
	v.obj.Set(key, val)
	return nil
}

// Get looks up key in an object-kinded v. Returns ErrExpectedObject if v is
// not an object, or ErrKeyNotFound if the key is absent.
func (v Value) Get(key string) (Value, error) {
	if v.kind != KindObject {
		return Value{}, newError(ErrExpectedObject, v.kind.String())
	}
	val, ok := v.obj.Find(key)
	if !ok {
		return Value{}, newError(ErrKeyNotFound, key)
	}
	return val, nil
}

// AtIndex returns the element at index within an array-kinded v. Returns
// ErrExpectedArray if v is not an array, or ErrOutOfRange if index is out
// of bounds — the Value-level accessor from original_source's value::at
// overload set (see SPEC_FULL.md's SUPPLEMENTED FEATURES).
func (v Value) AtIndex(index int) (Value, error) {
	if v.kind != KindArray {
		return Value{}, newError(ErrExpectedArray, v.kind.String())
	}
	return v.arr.TryAt(index)
}

// Append appends val to an array-kinded v, promoting a null v to an empty
// array first, mirroring Set's promotion rule for objects.
func (v *Value) Append(val Value) error {
	if v.kind == KindNull {
		v.Reset(KindArray)
	}
	if v.kind != KindArray {
		return newError(ErrExpectedArray, v.kind.String())
	}
	v.arr.Append(val)
	return nil
}

// Len reports the number of elements/entries for array/object kinds, or 0
// for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return v.arr.Len()
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Contains reports whether an object-kinded v has key. False for any
// other kind.
func (v Value) Contains(key string) bool {
	return v.kind == KindObject && v.obj.Contains(key)
}

// CopyTo returns a deep copy of v with every node rebound to handle. If
// handle already equals v's own handle the copy still happens (assignment
// semantics in spec.md §4.2 state copying is always deep); callers that
// want the move-when-equal fast path should compare handles themselves
// before calling CopyTo, as Array/Object's internal rebind helpers do.
func (v Value) CopyTo(handle storage.Handle) Value {
	switch v.kind {
	case KindArray:
		return FromArray(v.arr.CloneTo(handle))
	case KindObject:
		return FromObject(v.obj.CloneTo(handle))
	case KindString:
		return Value{kind: KindString, handle: handle, str: v.str.Rebind(handle)}
	default:
		cp := v
		cp.handle = handle
		return cp
	}
}

// Equal reports deep structural equality, independent of storage handles.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num.Equal(other.num)
	case KindString:
		return v.str.Equal(other.str)
	case KindArray:
		if v.arr.Len() != other.arr.Len() {
			return false
		}
		for i := 0; i < v.arr.Len(); i++ {
			if !v.arr.At(i).Equal(other.arr.At(i)) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		eq := true
		v.obj.Each(func(key string, val Value) bool {
			ov, ok := other.obj.Find(key)
			if !ok || !val.Equal(ov) {
				eq = false
				return false
			}
			return true
		})
		return eq
	default:
		return false
	}
}
