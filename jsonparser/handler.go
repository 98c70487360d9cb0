/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package jsonparser implements the basic push parser (C8): a streaming,
// byte-at-a-time JSON lexer that drives a caller-supplied Handler through
// document/object/array/key/string/number/bool/null events, resumable
// across arbitrary buffer boundaries. It never builds a value tree itself
// — see package domparser for the Handler implementation that does.
package jsonparser

import "github.com/kcenon/jsonvalue/number"

// Handler receives parse events in strict source order, mirroring
// original_source/basic_parser.hpp's protected virtual on_* members.
// *Data events deliver partial fragments when a string or key straddles
// an input buffer boundary; the paired *End event supplies the final
// fragment and marks completion. Any error returned halts parsing
// immediately and is propagated to the caller of WriteSome/Write/WriteEOF.
type Handler interface {
	OnDocumentBegin() error
	OnObjectBegin() error
	OnObjectEnd() error
	OnArrayBegin() error
	OnArrayEnd() error
	OnKeyData(frag []byte) error
	OnKeyEnd(frag []byte) error
	OnStringData(frag []byte) error
	OnStringEnd(frag []byte) error
	OnNumber(n number.Number) error
	OnBool(b bool) error
	OnNull() error
}
