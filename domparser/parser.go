/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package domparser implements the DOM-building parser (C9): a
// jsonparser.Handler that assembles a value.Value tree as events arrive,
// grounded on original_source/parser.hpp's push/pop stack of insertion
// points.
package domparser

import (
	"github.com/kcenon/jsonvalue/jsonparser"
	"github.com/kcenon/jsonvalue/log"
	"github.com/kcenon/jsonvalue/number"
	"github.com/kcenon/jsonvalue/storage"
	"github.com/kcenon/jsonvalue/value"
)

// frame is one entry of the insertion-point stack: the container the
// parser is currently filling, plus (for an object frame) the key
// latched by the most recent OnKeyEnd, awaiting its value.
type frame struct {
	obj     *value.Object
	arr     *value.Array
	hasKey  bool
	key     string
}

func (f *frame) isObject() bool { return f.obj != nil }

// Parser owns a root Value and a bounded stack of insertion points. It
// implements jsonparser.Handler.
type Parser struct {
	handle   storage.Handle
	maxDepth int
	logger   log.Logger

	basic *jsonparser.BasicParser
	stack jsonparser.Stack[*frame]

	root    value.Value
	haveRoot bool

	keyBuf []byte
	strBuf []byte
}

// Option configures a Parser at construction.
type Option func(*Parser)

// WithMaxDepth overrides the default nesting limit (jsonparser.DefaultMaxDepth).
func WithMaxDepth(n int) Option {
	return func(p *Parser) { p.maxDepth = n }
}

// WithHandle binds the parser's output tree to a specific storage
// resource instead of the process-wide default.
func WithHandle(h storage.Handle) Option {
	return func(p *Parser) { p.handle = h }
}

// WithLogger attaches a diagnostic logger to the underlying basic parser.
func WithLogger(l log.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// New returns a Parser ready to receive bytes via Write/WriteEOF.
func New(opts ...Option) *Parser {
	p := &Parser{maxDepth: jsonparser.DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	if p.handle.Resource() == nil {
		p.handle = storage.NewDefaultHandle()
	}
	basicOpts := []jsonparser.Option{jsonparser.WithMaxDepth(p.maxDepth)}
	if p.logger != nil {
		basicOpts = append(basicOpts, jsonparser.WithLogger(p.logger))
	}
	p.basic = jsonparser.New(p, basicOpts...)
	return p
}

// Write feeds buf to the underlying basic parser.
func (p *Parser) Write(buf []byte) (int, error) {
	return p.basic.Write(buf)
}

// WriteEOF signals end of input.
func (p *Parser) WriteEOF() error {
	return p.basic.WriteEOF()
}

// IsDone reports whether a complete document has been parsed.
func (p *Parser) IsDone() bool { return p.basic.IsDone() }

// Get returns the parsed root Value. Precondition: IsDone().
func (p *Parser) Get() value.Value { return p.root }

// Release returns the current tree and resets the parser to parse a new
// document; after Release, Get returns a zero Value until the next
// document has been parsed.
func (p *Parser) Release() value.Value {
	v := p.root
	p.root = value.Value{}
	p.haveRoot = false
	p.stack.Clear()
	p.keyBuf = p.keyBuf[:0]
	p.strBuf = p.strBuf[:0]
	p.basic.Reset()
	return v
}

// Parse is a one-shot convenience wrapper: parses data in full and
// returns the resulting tree.
func Parse(data []byte, opts ...Option) (value.Value, error) {
	p := New(opts...)
	if _, err := p.Write(data); err != nil {
		return value.Value{}, err
	}
	if err := p.WriteEOF(); err != nil {
		return value.Value{}, err
	}
	return p.Get(), nil
}

func (p *Parser) insert(v value.Value) error {
	if p.stack.Empty() {
		p.root = v
		p.haveRoot = true
		return nil
	}
	top := p.stack.Top()
	if top.isObject() {
		if !top.hasKey {
			return value.NewParseError(value.ErrSyntax, "value without a preceding key")
		}
		top.obj.Set(top.key, v)
		top.hasKey = false
		return nil
	}
	top.arr.Append(v)
	return nil
}

// OnDocumentBegin implements jsonparser.Handler.
func (p *Parser) OnDocumentBegin() error { return nil }

// OnObjectBegin implements jsonparser.Handler.
func (p *Parser) OnObjectBegin() error {
	obj := value.NewObject(p.handle)
	if err := p.insert(value.FromObject(obj)); err != nil {
		return err
	}
	p.stack.Push(&frame{obj: obj})
	return nil
}

// OnObjectEnd implements jsonparser.Handler.
func (p *Parser) OnObjectEnd() error {
	p.stack.Pop()
	return nil
}

// OnArrayBegin implements jsonparser.Handler.
func (p *Parser) OnArrayBegin() error {
	arr := value.NewArray(p.handle)
	if err := p.insert(value.FromArray(arr)); err != nil {
		return err
	}
	p.stack.Push(&frame{arr: arr})
	return nil
}

// OnArrayEnd implements jsonparser.Handler.
func (p *Parser) OnArrayEnd() error {
	p.stack.Pop()
	return nil
}

// OnKeyData implements jsonparser.Handler.
func (p *Parser) OnKeyData(frag []byte) error {
	p.keyBuf = append(p.keyBuf, frag...)
	return nil
}

// OnKeyEnd implements jsonparser.Handler.
func (p *Parser) OnKeyEnd(frag []byte) error {
	p.keyBuf = append(p.keyBuf, frag...)
	top := p.stack.Top()
	top.key = string(p.keyBuf)
	top.hasKey = true
	p.keyBuf = p.keyBuf[:0]
	return nil
}

// OnStringData implements jsonparser.Handler.
func (p *Parser) OnStringData(frag []byte) error {
	p.strBuf = append(p.strBuf, frag...)
	return nil
}

// OnStringEnd implements jsonparser.Handler.
func (p *Parser) OnStringEnd(frag []byte) error {
	p.strBuf = append(p.strBuf, frag...)
	v := value.StringIn(p.handle, string(p.strBuf))
	p.strBuf = p.strBuf[:0]
	return p.insert(v)
}

// OnNumber implements jsonparser.Handler.
func (p *Parser) OnNumber(n number.Number) error {
	return p.insert(value.FromNumberIn(p.handle, n))
}

// OnBool implements jsonparser.Handler.
func (p *Parser) OnBool(b bool) error {
	return p.insert(value.BoolIn(p.handle, b))
}

// OnNull implements jsonparser.Handler.
func (p *Parser) OnNull() error {
	return p.insert(value.NullIn(p.handle))
}
