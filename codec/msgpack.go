/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package codec snapshots and restores value.Value trees to and from
// MessagePack, for interop and debugging. It is never used on the
// parse/serialize hot path (C8-C10 only ever speak JSON text); it exists
// as an alternate, binary wire format for callers that want to persist or
// transmit a tree without round-tripping through JSON text.
package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kcenon/jsonvalue/number"
	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

// EncodeMsgpack renders v as a MessagePack byte slice.
func EncodeMsgpack(v value.Value) ([]byte, error) {
	return msgpack.Marshal(toNative(v))
}

// DecodeMsgpack rebuilds a value.Value tree from MessagePack bytes,
// allocating through h.
func DecodeMsgpack(data []byte, h storage.Handle) (value.Value, error) {
	var native interface{}
	if err := msgpack.Unmarshal(data, &native); err != nil {
		return value.Value{}, fmt.Errorf("codec: unmarshal: %w", err)
	}
	return fromNative(native, h)
}

// toNative converts a Value into the plain map[string]interface{} /
// []interface{} / scalar shape msgpack.Marshal understands natively,
// mirroring container.go's ToMessagePack map-building approach but for
// the full recursive tree instead of a single flat header+units record.
func toNative(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.GetBool()
		return b
	case value.KindNumber:
		n := v.AsNumber()
		switch n.Kind() {
		case number.KindInt64:
			return n.Int64()
		case number.KindUint64:
			return n.Uint64()
		default:
			return n.Double()
		}
	case value.KindString:
		s, _ := v.GetString()
		return s
	case value.KindArray:
		arr := v.AsArray()
		out := make([]interface{}, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			out[i] = toNative(arr.At(i))
		}
		return out
	case value.KindObject:
		obj := v.AsObject()
		out := make(map[string]interface{}, obj.Len())
		obj.Each(func(key string, child value.Value) bool {
			out[key] = toNative(child)
			return true
		})
		return out
	default:
		return nil
	}
}

// fromNative rebuilds a Value from the generic interface{} shape
// msgpack.Unmarshal produces (map[string]interface{}, []interface{}, and
// msgpack's own numeric/string/bool/nil primitives).
func fromNative(n interface{}, h storage.Handle) (value.Value, error) {
	switch t := n.(type) {
	case nil:
		return value.NullIn(h), nil
	case bool:
		return value.BoolIn(h, t), nil
	case string:
		return value.StringIn(h, t), nil
	case int64:
		return value.FromNumberIn(h, number.FromInt64(t)), nil
	case uint64:
		return value.FromNumberIn(h, number.FromUint64(t)), nil
	case int8:
		return value.FromNumberIn(h, number.FromInt64(int64(t))), nil
	case int16:
		return value.FromNumberIn(h, number.FromInt64(int64(t))), nil
	case int32:
		return value.FromNumberIn(h, number.FromInt64(int64(t))), nil
	case int:
		return value.FromNumberIn(h, number.FromInt64(int64(t))), nil
	case uint8:
		return value.FromNumberIn(h, number.FromUint64(uint64(t))), nil
	case uint16:
		return value.FromNumberIn(h, number.FromUint64(uint64(t))), nil
	case uint32:
		return value.FromNumberIn(h, number.FromUint64(uint64(t))), nil
	case float32:
		return value.FromNumberIn(h, number.FromDouble(float64(t))), nil
	case float64:
		// a value that arrived through this codec as a float is always
		// rebuilt as a Double, regardless of whether it happens to be a
		// whole number — only the parser's frac/exp tracking decides
		// that classification for JSON-sourced numbers (see number.Kind).
		return value.FromNumberIn(h, number.FromDouble(t)), nil
	case []interface{}:
		arr := value.NewArray(h)
		for _, elem := range t {
			child, err := fromNative(elem, h)
			if err != nil {
				return value.Value{}, err
			}
			arr.PushBack(child)
		}
		return value.FromArray(arr), nil
	case map[string]interface{}:
		obj := value.NewObject(h)
		for key, elem := range t {
			child, err := fromNative(elem, h)
			if err != nil {
				return value.Value{}, err
			}
			obj.Set(key, child)
		}
		return value.FromObject(obj), nil
	default:
		return value.Value{}, fmt.Errorf("codec: unsupported msgpack native type %T", n)
	}
}
