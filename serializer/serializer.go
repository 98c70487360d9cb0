/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package serializer implements the resumable, depth-first writer (C10)
// that converts a value.Value tree back into RFC 8259 JSON text, driven
// by a traverse.Iterator. Emission is suspendable mid-token so callers can
// feed it bounded output buffers, per spec.md §4.9.
package serializer

import (
	"github.com/kcenon/jsonvalue/number"
	"github.com/kcenon/jsonvalue/traverse"
	"github.com/kcenon/jsonvalue/value"
)

// Serializer writes a value.Value tree to JSON text across repeated,
// bounded Write calls.
type Serializer struct {
	it      *traverse.Iterator
	commas  []bool
	pending []byte
	off     int
	done    bool
}

// New returns a Serializer over root.
func New(root value.Value) *Serializer {
	return &Serializer{it: traverse.New(root)}
}

// Done reports whether every byte of the document has been written.
func (s *Serializer) Done() bool { return s.done && s.off >= len(s.pending) }

// Write copies as many bytes as fit into buf, pulling and rendering more
// of the tree as needed, and returns the number of bytes written. A
// return of n < len(buf) with a nil error and !Done() means the caller
// should call Write again with a fresh or continued buffer; n == 0 with
// Done() means the document is fully emitted.
func (s *Serializer) Write(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if s.off < len(s.pending) {
			c := copy(buf[n:], s.pending[s.off:])
			n += c
			s.off += c
			continue
		}
		if s.done {
			break
		}
		if err := s.fill(); err != nil {
			return n, err
		}
		if len(s.pending) == 0 && s.done {
			break
		}
	}
	return n, nil
}

// fill renders the next traversal record into s.pending, resetting the
// read cursor, and marks the serializer done once the traversal has no
// records left.
func (s *Serializer) fill() error {
	s.pending = s.pending[:0]
	s.off = 0
	if s.it.Done() {
		s.done = true
		return nil
	}
	rec := s.it.Next()
	s.renderSeparator(rec)
	s.renderRecord(rec)
	if s.it.Done() {
		s.done = true
	}
	return nil
}

// renderSeparator emits a leading comma if rec is not the first sibling
// at its depth, and a trailing key+colon if rec belongs to an object.
// Commas are attached to the *following* token, per spec.md §4.9, by
// deciding this record's comma before its own content rather than after
// the previous one.
func (s *Serializer) renderSeparator(rec traverse.Record) {
	if rec.End {
		// closing a container is never itself a new sibling; just drop
		// the comma tracker for the level we're leaving.
		if rec.Depth+1 < len(s.commas) {
			s.commas = s.commas[:rec.Depth+1]
		}
		return
	}
	if rec.Depth < len(s.commas) {
		if s.commas[rec.Depth] {
			s.pending = append(s.pending, ',')
		}
		s.commas[rec.Depth] = true
	} else {
		// first arrival at this depth (only happens for the root record)
		s.commas = append(s.commas, true)
	}
	if rec.Key != "" {
		s.pending = appendQuotedString(s.pending, rec.Key)
		s.pending = append(s.pending, ':')
	}
	if rec.Value.IsStructured() {
		// entering a container opens a fresh comma scope for its children,
		// discarding any leftover scope a sibling subtree left behind at
		// the same depth.
		s.commas = s.commas[:rec.Depth+1]
		s.commas = append(s.commas, false)
	}
}

func (s *Serializer) renderRecord(rec traverse.Record) {
	if rec.End {
		if rec.Value.Kind() == value.KindArray {
			s.pending = append(s.pending, ']')
		} else {
			s.pending = append(s.pending, '}')
		}
		return
	}
	switch rec.Value.Kind() {
	case value.KindNull:
		s.pending = append(s.pending, "null"...)
	case value.KindBool:
		if b, _ := rec.Value.GetBool(); b {
			s.pending = append(s.pending, "true"...)
		} else {
			s.pending = append(s.pending, "false"...)
		}
	case value.KindNumber:
		s.pending = appendNumber(s.pending, rec.Value.AsNumber())
	case value.KindString:
		str, _ := rec.Value.GetString()
		s.pending = appendQuotedString(s.pending, str)
	case value.KindArray:
		s.pending = append(s.pending, '[')
	case value.KindObject:
		s.pending = append(s.pending, '{')
	}
}

func appendNumber(dst []byte, n number.Number) []byte {
	return append(dst, n.String()...)
}

const hexDigits = "0123456789abcdef"

// appendQuotedString appends s to dst as a quoted JSON string, escaping
// `"`, `\`, and U+0000-U+001F, symmetric to jsonparser's decoding rules
// and spec.md §6's wire-format requirement.
func appendQuotedString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			dst = append(dst, '\\', c)
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		default:
			dst = append(dst, c)
		}
	}
	dst = append(dst, '"')
	return dst
}

// ToString renders root to a complete JSON string in one call, for
// callers that don't need the resumable, bounded-buffer API.
func ToString(root value.Value) (string, error) {
	s := New(root)
	var out []byte
	buf := make([]byte, 4096)
	for !s.Done() {
		n, err := s.Write(buf)
		if err != nil {
			return "", err
		}
		out = append(out, buf[:n]...)
		if n == 0 && !s.Done() {
			break
		}
	}
	return string(out), nil
}
