/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package jsonparser

import (
	"github.com/kcenon/jsonvalue/log"
	"github.com/kcenon/jsonvalue/value"
)

// state drives the byte-at-a-time machine. The parser never recurses over
// JSON structure; nesting is tracked by the frames stack alongside this single
// state field, so suspension at any byte boundary only needs to save this
// struct's fields, per spec.md §4.7/§9.
type state int

const (
	stStart state = iota
	stValueStart
	stObjectKeyStartOrClose
	stObjectCommaBeforeKey
	stObjectKeyBody
	stObjectAfterKey
	stObjectAfterColon
	stObjectAfterValue
	stArrayValueStartOrClose
	stArrayCommaBeforeValue
	stArrayAfterValue
	stStringBody
	stStringEscape
	stStringUnicode
	stNumberSign
	stNumberLeadingZero
	stNumberInt
	stNumberFracStart
	stNumberFrac
	stNumberExpSign
	stNumberExpStart
	stNumberExp
	stLiteral
	stAfterDocument
)

type frameKind uint8

const (
	frameArray frameKind = iota
	frameObject
)

// literalKind identifies which of true/false/null is being matched in
// stLiteral.
type literalKind uint8

const (
	literalTrue literalKind = iota
	literalFalse
	literalNull
)

var literalText = map[literalKind]string{
	literalTrue:  "true",
	literalFalse: "false",
	literalNull:  "null",
}

// DefaultMaxDepth is the nesting limit used when no explicit MaxDepth
// option is supplied, matching original_source/parser.hpp's
// default_max_depth.
const DefaultMaxDepth = 32

// BasicParser is the resumable, handler-driven JSON push parser (C8).
type BasicParser struct {
	handler  Handler
	maxDepth int
	logger   log.Logger

	state   state
	frames  Stack[frameKind]
	started bool
	done    bool

	frag  []byte // pending string/key fragment accumulated since last *Data/*End flush
	inKey bool   // whether frag is accumulating an object key vs. a string value

	unicodeDigits int
	unicodeValue  uint32
	pendingHigh   uint32

	// number accumulation
	neg         bool
	mantissa    uint64
	mantissaOK  bool
	expNeg      bool
	exponent    uint64
	exponentOK  bool
	hasFrac     bool
	hasExp      bool
	numText     []byte

	lit     literalKind
	litPos  int
}

// Option configures a BasicParser at construction.
type Option func(*BasicParser)

// WithMaxDepth overrides the default nesting limit.
func WithMaxDepth(n int) Option {
	return func(p *BasicParser) { p.maxDepth = n }
}

// WithLogger attaches a diagnostic logger, used to trace depth-limit
// rejections. Parsing works identically without one.
func WithLogger(l log.Logger) Option {
	return func(p *BasicParser) { p.logger = l }
}

// New returns a BasicParser delivering events to handler.
func New(handler Handler, opts ...Option) *BasicParser {
	p := &BasicParser{handler: handler, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset returns the parser to its initial state, ready to parse a new
// document with the same handler.
func (p *BasicParser) Reset() {
	p.state = stStart
	p.frames.Clear()
	p.started = false
	p.done = false
	p.frag = nil
	p.resetNumber()
}

// IsDone reports whether a complete value has been parsed and no trailing
// non-whitespace bytes have been seen.
func (p *BasicParser) IsDone() bool { return p.done }

func (p *BasicParser) resetNumber() {
	p.neg, p.expNeg, p.hasFrac, p.hasExp = false, false, false, false
	p.mantissa, p.exponent = 0, 0
	p.mantissaOK, p.exponentOK = true, true
	p.numText = p.numText[:0]
}

// Write feeds all of buf to the parser and reports the number of bytes
// consumed (always len(buf) unless an error occurs) and any error.
func (p *BasicParser) Write(buf []byte) (int, error) {
	return p.WriteSome(buf, false)
}

// WriteEOF signals end of input, finalizing any value whose completion
// was ambiguous without more data (a bare number with no trailing
// delimiter).
func (p *BasicParser) WriteEOF() error {
	_, err := p.WriteSome(nil, true)
	return err
}

// WriteSome feeds buf to the parser. If eof is true, buf is treated as the
// final bytes of the input and pending ambiguous tokens (numbers) are
// finalized. Returns the number of bytes consumed and any error.
func (p *BasicParser) WriteSome(buf []byte, eof bool) (int, error) {
	i := 0
	for i < len(buf) {
		c := buf[i]
		consumed, err := p.step(c, false)
		if err != nil {
			return i, err
		}
		if consumed {
			i++
		} else {
			// step declined this byte (it belongs to the next token);
			// this only happens at number/literal boundaries, handled
			// by re-dispatching without advancing i.
			if err2 := p.flushPending(); err2 != nil {
				return i, err2
			}
		}
	}
	if eof {
		if err := p.finish(); err != nil {
			return i, err
		}
		return i, nil
	}
	if err := p.flushStraddlingFragment(); err != nil {
		return i, err
	}
	return i, nil
}

// flushStraddlingFragment reports a partial string/key fragment via
// OnStringData/OnKeyData when a buffer ends mid-string, so a caller
// feeding a document byte-by-byte still sees incremental progress rather
// than one fragment at the very end, per spec.md §4.7.
func (p *BasicParser) flushStraddlingFragment() error {
	if len(p.frag) == 0 {
		return nil
	}
	switch p.state {
	case stStringBody, stObjectKeyBody, stStringEscape, stStringUnicode:
		if p.inKey {
			if err := p.handler.OnKeyData(p.frag); err != nil {
				return err
			}
		} else if err := p.handler.OnStringData(p.frag); err != nil {
			return err
		}
		p.frag = p.frag[:0]
	}
	return nil
}

// flushPending finalizes a number or literal that ended because the next
// byte doesn't belong to it, without consuming that byte.
func (p *BasicParser) flushPending() error {
	switch p.state {
	case stNumberLeadingZero, stNumberInt, stNumberFrac, stNumberExp:
		return p.finalizeNumber()
	case stLiteral:
		return p.finalizeLiteral()
	}
	return nil
}

func (p *BasicParser) finish() error {
	switch p.state {
	case stNumberLeadingZero, stNumberInt, stNumberFrac, stNumberExp:
		if err := p.finalizeNumber(); err != nil {
			return err
		}
	case stLiteral:
		if err := p.finalizeLiteral(); err != nil {
			return err
		}
	case stStringBody, stObjectKeyBody, stStringEscape, stStringUnicode:
		return newErr(value.ErrSyntax, "unterminated string at end of input")
	}
	if !p.started {
		return newErr(value.ErrSyntax, "empty input")
	}
	if p.state != stAfterDocument {
		return newErr(value.ErrSyntax, "unexpected end of input")
	}
	p.done = true
	return nil
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// step consumes one byte (unless it returns consumed=false, meaning the
// byte belongs to the token after the one currently being finalized).
func (p *BasicParser) step(c byte, _ bool) (bool, error) {
	switch p.state {
	case stStart:
		if isWhitespace(c) {
			return true, nil
		}
		p.started = true
		if err := p.handler.OnDocumentBegin(); err != nil {
			return true, err
		}
		p.state = stValueStart
		return p.step(c, false)

	case stValueStart, stObjectAfterColon, stArrayCommaBeforeValue:
		return p.beginValue(c, true)

	case stArrayValueStartOrClose:
		if c == ']' {
			return p.endContainer()
		}
		return p.beginValue(c, true)

	case stObjectKeyStartOrClose, stObjectCommaBeforeKey:
		if c == '}' && p.state == stObjectKeyStartOrClose {
			return p.endContainer()
		}
		if isWhitespace(c) {
			return true, nil
		}
		if c != '"' {
			return true, newErr(value.ErrSyntax, "expected object key")
		}
		p.frag = p.frag[:0]
		p.inKey = true
		p.state = stObjectKeyBody
		return true, nil

	case stObjectKeyBody:
		return p.stringByte(c, true)

	case stObjectAfterKey:
		if isWhitespace(c) {
			return true, nil
		}
		if c != ':' {
			return true, newErr(value.ErrSyntax, "expected ':' after object key")
		}
		p.state = stObjectAfterColon
		return true, nil

	case stObjectAfterValue:
		if isWhitespace(c) {
			return true, nil
		}
		switch c {
		case ',':
			p.state = stObjectCommaBeforeKey
			return true, nil
		case '}':
			return p.endContainer()
		}
		return true, newErr(value.ErrSyntax, "expected ',' or '}'")

	case stArrayAfterValue:
		if isWhitespace(c) {
			return true, nil
		}
		switch c {
		case ',':
			p.state = stArrayCommaBeforeValue
			return true, nil
		case ']':
			return p.endContainer()
		}
		return true, newErr(value.ErrSyntax, "expected ',' or ']'")

	case stStringBody:
		return p.stringByte(c, false)

	case stStringEscape:
		return p.stringEscape(c)

	case stStringUnicode:
		return p.stringUnicode(c)

	case stNumberSign, stNumberLeadingZero, stNumberInt, stNumberFracStart,
		stNumberFrac, stNumberExpSign, stNumberExpStart, stNumberExp:
		return p.numberByte(c)

	case stLiteral:
		return p.literalByte(c)

	case stAfterDocument:
		if isWhitespace(c) {
			return true, nil
		}
		return true, newErr(value.ErrExtraData, "")
	}
	return true, newErr(value.ErrSyntax, "internal: unknown state")
}

func (p *BasicParser) logDepthExceeded() {
	if p.logger != nil {
		p.logger.Log(log.LevelWarn, "max nesting depth exceeded", "depth", p.frames.Len(), "limit", p.maxDepth)
	}
}

// beginValue dispatches on the first byte of a value. allowClose is
// unused here (closing brackets are handled by the caller before
// reaching this function) but kept for symmetry with beginValue call
// sites that pre-check for '}'/']'.
func (p *BasicParser) beginValue(c byte, _ bool) (bool, error) {
	if isWhitespace(c) {
		return true, nil
	}
	switch {
	case c == '{':
		if p.frames.Len() >= p.maxDepth {
			p.logDepthExceeded()
			return true, newErr(value.ErrTooDeep, "")
		}
		p.frames.Push(frameObject)
		if err := p.handler.OnObjectBegin(); err != nil {
			return true, err
		}
		p.state = stObjectKeyStartOrClose
		return true, nil
	case c == '[':
		if p.frames.Len() >= p.maxDepth {
			p.logDepthExceeded()
			return true, newErr(value.ErrTooDeep, "")
		}
		p.frames.Push(frameArray)
		if err := p.handler.OnArrayBegin(); err != nil {
			return true, err
		}
		p.state = stArrayValueStartOrClose
		return true, nil
	case c == '"':
		p.frag = p.frag[:0]
		p.inKey = false
		p.state = stStringBody
		return true, nil
	case c == '-' || isDigit(c):
		p.resetNumber()
		p.numText = append(p.numText, c)
		if c == '-' {
			p.neg = true
			p.state = stNumberSign
			return true, nil
		}
		return p.numberFirstDigit(c)
	case c == 't' || c == 'f' || c == 'n':
		switch c {
		case 't':
			p.lit = literalTrue
		case 'f':
			p.lit = literalFalse
		case 'n':
			p.lit = literalNull
		}
		p.litPos = 1
		p.state = stLiteral
		return true, nil
	}
	return true, newErr(value.ErrSyntax, "unexpected character")
}

// endContainer pops the frame stack and reports OnObjectEnd/OnArrayEnd,
// then computes the next state from the parent frame (or document end if
// the stack is now empty).
func (p *BasicParser) endContainer() (bool, error) {
	kind := p.frames.Pop()
	var err error
	if kind == frameObject {
		err = p.handler.OnObjectEnd()
	} else {
		err = p.handler.OnArrayEnd()
	}
	if err != nil {
		return true, err
	}
	return true, p.afterValue()
}

// afterValue transitions to whatever state follows a just-completed value
// (scalar or container), based on the enclosing frame.
func (p *BasicParser) afterValue() error {
	if p.frames.Empty() {
		p.state = stAfterDocument
		return nil
	}
	if p.frames.Top() == frameObject {
		p.state = stObjectAfterValue
	} else {
		p.state = stArrayAfterValue
	}
	return nil
}
