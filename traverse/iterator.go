/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package traverse implements the depth-first traversal generator (C7)
// over a value.Value tree, grounded on original_source/iterator.hpp's
// const_iterator/node design.
package traverse

import "github.com/kcenon/jsonvalue/value"

// Record is one step of a traversal: the node's depth, its key within its
// parent object (empty if the parent is an array or this is the root),
// the node's Value, whether it is the last sibling at this depth, and
// whether this step is the closing visit of a container (so a serializer
// can emit the matching `}`/`]`).
type Record struct {
	Depth int
	Key   string
	Value value.Value
	Last  bool
	End   bool
}

// node is one frame of the iterator's internal stack: either mid-way
// through an array (tracking the next index) or mid-way through an
// object (tracking the next key), mirroring original_source/iterator.hpp's
// tagged union of sub-iterators.
type node struct {
	v      value.Value
	depth  int
	index  int      // next array index, or next object entry position
	keys   []string // object keys, snapshotted at push time
	opened bool      // whether the begin record has already been emitted
}

// Iterator is a depth-first generator over a Value tree. Its stack holds
// 64 frames inline and spills further frames to the heap; it has no depth
// limit and reports no error for deep trees.
type Iterator struct {
	stack stackT
	done  bool
}

// stackT mirrors the inline-then-heap Stack used by jsonparser,
// reimplemented locally to avoid an import of the parser package from the
// traversal layer (the two components share the technique, not the type).
type stackT struct {
	inline [64]*node
	n      int
	spill  []*node
}

func (s *stackT) push(v *node) {
	if s.n < len(s.inline) {
		s.inline[s.n] = v
	} else {
		s.spill = append(s.spill, v)
	}
	s.n++
}

func (s *stackT) pop() *node {
	s.n--
	if s.n < len(s.inline) {
		v := s.inline[s.n]
		s.inline[s.n] = nil
		return v
	}
	idx := s.n - len(s.inline)
	v := s.spill[idx]
	s.spill = s.spill[:idx]
	return v
}

func (s *stackT) top() *node {
	if s.n <= len(s.inline) {
		return s.inline[s.n-1]
	}
	return s.spill[s.n-len(s.inline)-1]
}

func (s *stackT) empty() bool { return s.n == 0 }

// New returns an Iterator over root.
func New(root value.Value) *Iterator {
	it := &Iterator{}
	it.stack.push(newNode(root, 0))
	return it
}

func newNode(v value.Value, depth int) *node {
	n := &node{v: v, depth: depth}
	if v.Kind() == value.KindObject {
		n.keys = v.AsObject().Keys()
	}
	return n
}

// Done reports whether traversal has completed.
func (it *Iterator) Done() bool { return it.done }

// Next advances the traversal and returns the next Record. Precondition:
// !Done().
func (it *Iterator) Next() Record {
	top := it.stack.top()

	if !top.opened {
		top.opened = true
		isLast := it.stack.n == 1 // root is always "last" relative to nothing above it
		rec := Record{Depth: top.depth, Value: top.v, Last: isLast}
		if !top.v.IsStructured() {
			it.stack.pop()
			it.advanceParentOrFinish()
			return rec
		}
		return rec
	}

	switch top.v.Kind() {
	case value.KindArray:
		arr := top.v.AsArray()
		if top.index < arr.Len() {
			child := arr.At(top.index)
			last := top.index == arr.Len()-1
			top.index++
			it.stack.push(newNode(child, top.depth+1))
			return it.emitChildOrFlattenScalar(last)
		}
		it.stack.pop()
		rec := Record{Depth: top.depth, Value: top.v, End: true, Last: it.parentSaysLast()}
		it.advanceParentOrFinish()
		return rec

	case value.KindObject:
		if top.index < len(top.keys) {
			key := top.keys[top.index]
			child, _ := top.v.AsObject().Find(key)
			last := top.index == len(top.keys)-1
			top.index++
			it.stack.push(newNode(child, top.depth+1))
			return it.emitChildObjectEntryOrFlatten(key, last)
		}
		it.stack.pop()
		rec := Record{Depth: top.depth, Value: top.v, End: true, Last: it.parentSaysLast()}
		it.advanceParentOrFinish()
		return rec
	}

	// unreachable for a well-formed tree
	it.done = true
	return Record{}
}

// emitChildOrFlattenScalar emits the begin-record for a just-pushed array
// child, collapsing scalar children into a single record (no separate
// "end" record for non-structured values).
func (it *Iterator) emitChildOrFlattenScalar(last bool) Record {
	top := it.stack.top()
	top.opened = true
	rec := Record{Depth: top.depth, Value: top.v, Last: last}
	if !top.v.IsStructured() {
		it.stack.pop()
	}
	return rec
}

func (it *Iterator) emitChildObjectEntryOrFlatten(key string, last bool) Record {
	top := it.stack.top()
	top.opened = true
	rec := Record{Depth: top.depth, Key: key, Value: top.v, Last: last}
	if !top.v.IsStructured() {
		it.stack.pop()
	}
	return rec
}

// parentSaysLast reports whether the frame now on top of the stack (the
// parent of the container that was just closed) considers its current
// child the last sibling.
func (it *Iterator) parentSaysLast() bool {
	if it.stack.empty() {
		return true
	}
	parent := it.stack.top()
	switch parent.v.Kind() {
	case value.KindArray:
		return parent.index == parent.v.AsArray().Len()
	case value.KindObject:
		return parent.index == len(parent.keys)
	default:
		return true
	}
}

func (it *Iterator) advanceParentOrFinish() {
	if it.stack.empty() {
		it.done = true
	}
}
