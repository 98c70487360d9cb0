/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package value

import "github.com/kcenon/jsonvalue/storage"

// Marshaler is the to-json customization point (spec.md §4.2's "store/load
// to user types"): a user type implementing ToValue can be converted into
// a Value via Store, without Value itself enumerating user types. Mirrors
// original_source/value.hpp's value_exchange<T>::to_json trait.
type Marshaler interface {
	ToValue(handle storage.Handle) Value
}

// Unmarshaler is the from-json customization point: a user type
// implementing FromValue can be populated from a Value via Load. Mirrors
// original_source/value.hpp's value_exchange<T>::from_json trait and
// original_source/assign_vector.hpp's generic from_json(vector<T,A>&,
// value const&) demonstration.
type Unmarshaler interface {
	FromValue(v Value) error
}

// Store converts m into a Value bound to handle. This is a thin dispatch
// layer, not part of the hard core, per spec.md §4.2.
func Store(handle storage.Handle, m Marshaler) Value {
	return m.ToValue(handle)
}

// Load populates u from v. Returns whatever error u.FromValue reports.
func Load(v Value, u Unmarshaler) error {
	return u.FromValue(v)
}
