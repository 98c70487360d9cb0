/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package jsonstring implements the byte-sequence container (C3) every
// string-kinded Value owns: a UTF-8 payload whose backing storage is
// sourced from the owning value's memory resource rather than a bare Go
// string literal, so string payloads participate in the same allocator
// bookkeeping as arrays and objects.
package jsonstring

import (
	"unicode/utf8"

	"github.com/kcenon/jsonvalue/storage"
)

// String is an allocator-bound, UTF-8 byte sequence.
type String struct {
	handle storage.Handle
	bytes  []byte
}

// New returns a String holding a copy of s, allocated from handle.
func New(handle storage.Handle, s string) String {
	buf := handle.Allocate(len(s), 1)
	copy(buf, s)
	return String{handle: handle, bytes: buf}
}

// NewBytes returns a String holding a copy of b, allocated from handle.
func NewBytes(handle storage.Handle, b []byte) String {
	buf := handle.Allocate(len(b), 1)
	copy(buf, b)
	return String{handle: handle, bytes: buf}
}

// Handle returns the String's owning storage handle.
func (s String) Handle() storage.Handle { return s.handle }

// Bytes returns the raw UTF-8 bytes. Callers must not mutate the returned
// slice.
func (s String) Bytes() []byte { return s.bytes }

// String returns the value as a Go string (always a copy, per Go string
// semantics).
func (s String) String() string { return string(s.bytes) }

// Len returns the byte length of the string.
func (s String) Len() int { return len(s.bytes) }

// Valid reports whether the stored bytes are well-formed UTF-8.
func (s String) Valid() bool { return utf8.Valid(s.bytes) }

// Equal reports byte-exact equality, independent of the two Strings'
// storage handles.
func (s String) Equal(other String) bool {
	if len(s.bytes) != len(other.bytes) {
		return false
	}
	for i, b := range s.bytes {
		if other.bytes[i] != b {
			return false
		}
	}
	return true
}

// Rebind returns a copy of s whose bytes are allocated from handle. If s is
// already bound to an equal handle, Rebind still returns a fresh copy (the
// caller decides whether to skip rebinding when handles are equal; Value's
// assignment path makes that decision, see value/value.go).
func (s String) Rebind(handle storage.Handle) String {
	return NewBytes(handle, s.bytes)
}

// Release returns the backing bytes to the owning resource. After Release
// the String must not be used again.
func (s String) Release() {
	s.handle.Deallocate(s.bytes)
}
