/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package jsonparser

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/kcenon/jsonvalue/value"
)

// stringByte consumes one byte of a string or object-key body (plain
// bytes, not inside an escape). Decodes `\"`/`\\`/`\/`/`\b`/`\f`/`\n`/
// `\r`/`\t` and `\uXXXX` with surrogate-pair combination, per spec.md
// §4.7.
func (p *BasicParser) stringByte(c byte, isKey bool) (bool, error) {
	p.inKey = isKey
	if c == '"' {
		p.flushPendingSurrogate()
		if isKey {
			if err := p.handler.OnKeyEnd(p.frag); err != nil {
				return true, err
			}
			p.state = stObjectAfterKey
		} else {
			if err := p.handler.OnStringEnd(p.frag); err != nil {
				return true, err
			}
			if err := p.afterValue(); err != nil {
				return true, err
			}
		}
		p.frag = p.frag[:0]
		return true, nil
	}
	if c == '\\' {
		p.state = stStringEscape
		return true, nil
	}
	if c < 0x20 {
		return true, newErr(value.ErrSyntax, "unescaped control character in string")
	}
	p.frag = append(p.frag, c)
	return true, nil
}

func (p *BasicParser) bodyState() state {
	if p.inKey {
		return stObjectKeyBody
	}
	return stStringBody
}

func (p *BasicParser) stringEscape(c byte) (bool, error) {
	switch c {
	case '"', '\\', '/':
		p.frag = append(p.frag, c)
	case 'b':
		p.frag = append(p.frag, '\b')
	case 'f':
		p.frag = append(p.frag, '\f')
	case 'n':
		p.frag = append(p.frag, '\n')
	case 'r':
		p.frag = append(p.frag, '\r')
	case 't':
		p.frag = append(p.frag, '\t')
	case 'u':
		p.unicodeDigits = 0
		p.unicodeValue = 0
		p.state = stStringUnicode
		return true, nil
	default:
		return true, newErr(value.ErrSyntax, "invalid escape sequence")
	}
	p.state = p.bodyState()
	return true, nil
}

func hexVal(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

func (p *BasicParser) stringUnicode(c byte) (bool, error) {
	v, ok := hexVal(c)
	if !ok {
		return true, newErr(value.ErrSyntax, "invalid \\u escape")
	}
	p.unicodeValue = p.unicodeValue<<4 | v
	p.unicodeDigits++
	if p.unicodeDigits < 4 {
		return true, nil
	}
	r := rune(p.unicodeValue)
	if p.pendingHigh != 0 {
		if utf16.IsSurrogate(rune(p.pendingHigh)) && r >= 0xDC00 && r <= 0xDFFF {
			combined := utf16.DecodeRune(rune(p.pendingHigh), r)
			p.frag = utf8.AppendRune(p.frag, combined)
		} else {
			// dangling high surrogate: emit replacement, then handle r on
			// its own.
			p.frag = utf8.AppendRune(p.frag, utf8.RuneError)
			p.frag = utf8.AppendRune(p.frag, r)
		}
		p.pendingHigh = 0
	} else if r >= 0xD800 && r <= 0xDBFF {
		p.pendingHigh = uint32(r)
		p.state = p.bodyState()
		return true, nil
	} else {
		p.frag = utf8.AppendRune(p.frag, r)
	}
	p.state = p.bodyState()
	return true, nil
}

// flushPendingSurrogate emits a replacement character for a dangling high
// surrogate left unresolved when the string closes.
func (p *BasicParser) flushPendingSurrogate() {
	if p.pendingHigh != 0 {
		p.frag = utf8.AppendRune(p.frag, utf8.RuneError)
		p.pendingHigh = 0
	}
}
