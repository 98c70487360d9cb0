/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package value

import (
	"github.com/kcenon/jsonvalue/storage"
)

// element is one entry of an Object: it carries its own key, is linked
// into the insertion-order doubly-linked list via prev/next, and is
// chained into its bucket singly-linked list via bucketNext. Go has no
// raw struct-embedding trick for "header + inline variable-length key" the
// way a single malloc'd buffer would in C++; a Go element struct holding a
// string field is the idiomatic one-allocation-per-element approximation
// spec.md §9 itself anticipates ("an implementation in a language without
// raw struct-embedding can approximate this with a single-allocation
// buffer holding header + key bytes").
type element struct {
	key        string
	hash       uint64
	value      Value
	prev, next *element
	bucketNext *element
}

// Object is the insertion-ordered, hashed map from string key to Value
// (C5): FNV-1a hashing, a prime bucket table, intrusive doubly-linked
// elements for insertion order, singly-linked bucket chains for lookup.
type Object struct {
	handle    storage.Handle
	buckets   []*element
	head, tail *element
	count     int
	maxLoad   float64
}

// DefaultMaxLoadFactor is the target size/bucket_count ratio a mutation
// must not exceed, per spec.md §4.5.
const DefaultMaxLoadFactor = 1.0

// NewObject returns an empty Object bound to handle.
func NewObject(handle storage.Handle) *Object {
	o := &Object{handle: handle, maxLoad: DefaultMaxLoadFactor}
	o.buckets = make([]*element, smallPrimes[0])
	return o
}

// Handle returns the object's storage handle.
func (o *Object) Handle() storage.Handle { return o.handle }

// Len reports the number of key/value pairs.
func (o *Object) Len() int { return o.count }

// Empty reports whether the object has no entries.
func (o *Object) Empty() bool { return o.count == 0 }

// BucketCount reports the current number of buckets.
func (o *Object) BucketCount() int { return len(o.buckets) }

// LoadFactor reports the current size/bucket_count ratio.
func (o *Object) LoadFactor() float64 {
	if len(o.buckets) == 0 {
		return 0
	}
	return float64(o.count) / float64(len(o.buckets))
}

// MaxLoadFactor returns the configured rehash threshold.
func (o *Object) MaxLoadFactor() float64 { return o.maxLoad }

// SetMaxLoadFactor changes the rehash threshold, triggering an immediate
// rehash if the new, stricter threshold is already exceeded.
func (o *Object) SetMaxLoadFactor(f float64) {
	o.maxLoad = f
	if o.LoadFactor() > o.maxLoad {
		o.Rehash(bucketCountFor(ceilDiv(o.count, o.maxLoad)))
	}
}

func ceilDiv(n int, f float64) int {
	if f <= 0 {
		return n
	}
	v := float64(n) / f
	iv := int(v)
	if float64(iv) < v {
		iv++
	}
	return iv
}

func (o *Object) bucketIndex(hash uint64) int {
	return int(hash % uint64(len(o.buckets)))
}

// find locates the element for key, computing its hash unless hash != 0 is
// supplied by the caller (callers that already know the hash pass it to
// avoid recomputation, per spec.md §4.5's find(k, [hash])).
func (o *Object) find(key string, hash uint64) *element {
	if hash == 0 {
		hash = fnv1a64([]byte(key))
	}
	for e := o.buckets[o.bucketIndex(hash)]; e != nil; e = e.bucketNext {
		if e.hash == hash && e.key == key {
			return e
		}
	}
	return nil
}

// Find returns the value for key and true, or a zero Value and false.
func (o *Object) Find(key string) (Value, bool) {
	e := o.find(key, 0)
	if e == nil {
		return Value{}, false
	}
	return e.value, true
}

// Contains reports whether key is present.
func (o *Object) Contains(key string) bool {
	return o.find(key, 0) != nil
}

// Count returns 1 if key is present, 0 otherwise (map-like vocabulary
// parity with the C++ container interface spec.md §9's SUPPLEMENTED
// FEATURES calls out).
func (o *Object) Count(key string) int {
	if o.Contains(key) {
		return 1
	}
	return 0
}

func (o *Object) rebind(v Value) Value {
	if v.handle.Equal(o.handle) {
		return v
	}
	return v.CopyTo(o.handle)
}

// linkTail appends e to the insertion-order list.
func (o *Object) linkTail(e *element) {
	e.prev = o.tail
	e.next = nil
	if o.tail != nil {
		o.tail.next = e
	} else {
		o.head = e
	}
	o.tail = e
}

// unlink removes e from the insertion-order list.
func (o *Object) unlink(e *element) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		o.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		o.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

// bucketPrepend adds e to the front of its bucket chain.
func (o *Object) bucketPrepend(e *element) {
	idx := o.bucketIndex(e.hash)
	e.bucketNext = o.buckets[idx]
	o.buckets[idx] = e
}

// bucketRemove unlinks e from its bucket chain.
func (o *Object) bucketRemove(e *element) {
	idx := o.bucketIndex(e.hash)
	cur := o.buckets[idx]
	if cur == e {
		o.buckets[idx] = e.bucketNext
		e.bucketNext = nil
		return
	}
	for cur != nil {
		if cur.bucketNext == e {
			cur.bucketNext = e.bucketNext
			e.bucketNext = nil
			return
		}
		cur = cur.bucketNext
	}
}

// Insert stores v under key if key is not already present, returning the
// live value and whether an insertion happened. On a key already present,
// Insert returns the existing value unchanged, matching
// insert/emplace/operator[] semantics from spec.md §4.5.
func (o *Object) Insert(key string, v Value) (Value, bool) {
	hash := fnv1a64([]byte(key))
	if e := o.find(key, hash); e != nil {
		return e.value, false
	}
	e := &element{key: key, hash: hash, value: o.rebind(v)}
	o.linkTail(e)
	o.bucketPrepend(e)
	o.count++
	if o.LoadFactor() > o.maxLoad {
		o.Rehash(bucketCountFor(ceilDiv(o.count, o.maxLoad)))
	}
	return e.value, true
}

// Set stores v under key unconditionally, overwriting any existing value
// without moving the key's position in insertion order. This is the
// `operator[]`-as-assignment convenience spec.md's `value[key] = ...`
// indexing contract implies (§4.2), distinct from Insert's
// insert-if-absent semantics.
func (o *Object) Set(key string, v Value) {
	hash := fnv1a64([]byte(key))
	if e := o.find(key, hash); e != nil {
		e.value = o.rebind(v)
		return
	}
	o.Insert(key, v)
}

// Erase removes key, returning the number of elements removed (0 or 1),
// per spec.md §4.5's erase(key) contract.
func (o *Object) Erase(key string) int {
	hash := fnv1a64([]byte(key))
	e := o.find(key, hash)
	if e == nil {
		return 0
	}
	o.unlink(e)
	o.bucketRemove(e)
	o.count--
	return 1
}

// Node is a detached Object element, owning its key/value but linked into
// neither the insertion-order list nor a bucket chain — the node handle
// spec.md §4.5's extract/insert pair works with.
type Node struct {
	key   string
	value Value
}

// Key returns the node's key.
func (n Node) Key() string { return n.key }

// Value returns the node's value.
func (n Node) Value() Value { return n.value }

// Extract detaches key's element from the object without destroying it and
// returns it as a Node, per spec.md §4.5's extract(pos). The second return
// is false if key was absent.
func (o *Object) Extract(key string) (Node, bool) {
	hash := fnv1a64([]byte(key))
	e := o.find(key, hash)
	if e == nil {
		return Node{}, false
	}
	o.unlink(e)
	o.bucketRemove(e)
	o.count--
	return Node{key: e.key, value: e.value}, true
}

// Reinsert reattaches a previously extracted Node at the tail of the
// insertion order. When the node value's resource matches the object's,
// the value is reattached as is; otherwise it is deep-copied into the
// object's resource. Returns true if the key was absent (and thus
// reinserted), or false, leaving the object unchanged, if the key is
// already present.
func (o *Object) Reinsert(n Node) (ok bool) {
	hash := fnv1a64([]byte(n.key))
	if o.find(n.key, hash) != nil {
		return false
	}
	v := n.value
	if !v.handle.Equal(o.handle) {
		v = v.CopyTo(o.handle)
	}
	e := &element{key: n.key, hash: hash, value: v}
	o.linkTail(e)
	o.bucketPrepend(e)
	o.count++
	return true
}

// Rehash resizes the bucket table to the smallest entry of the prime
// bucket-count progression (see bucketCountFor) that is >= n, clamped
// below by ceil(size/max_load), and rebuilds every bucket chain by walking
// the insertion-ordered list in order, so chains preserve insertion order
// on collisions, per spec.md §4.5.
func (o *Object) Rehash(n int) {
	min := bucketCountFor(ceilDiv(o.count, o.maxLoad))
	if n < min {
		n = min
	}
	n = bucketCountFor(n)
	if n == len(o.buckets) {
		return
	}
	o.buckets = make([]*element, n)
	for e := o.head; e != nil; e = e.next {
		e.bucketNext = nil
	}
	for e := o.head; e != nil; e = e.next {
		o.bucketPrepend(e)
	}
}

// Each calls fn for every entry in insertion order. fn returning false
// stops iteration early.
func (o *Object) Each(fn func(key string, v Value) bool) {
	for e := o.head; e != nil; e = e.next {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.count)
	for e := o.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Clear removes all entries, keeping the current bucket count.
func (o *Object) Clear() {
	for i := range o.buckets {
		o.buckets[i] = nil
	}
	o.head, o.tail = nil, nil
	o.count = 0
}

// Merge copies every entry of other into o that o does not already
// contain; conflicting keys keep o's existing value (destination wins),
// resolving spec.md §9's open question. Both objects must share an equal
// resource; if not, Merge returns ErrResourceMismatch and makes no
// changes.
func (o *Object) Merge(other *Object) error {
	if !o.handle.Equal(other.handle) {
		return newError(ErrResourceMismatch, "object.Merge requires equal resources")
	}
	for e := other.head; e != nil; e = e.next {
		if o.find(e.key, e.hash) != nil {
			continue
		}
		n := &element{key: e.key, hash: e.hash, value: o.rebind(e.value)}
		o.linkTail(n)
		o.bucketPrepend(n)
		o.count++
	}
	if o.LoadFactor() > o.maxLoad {
		o.Rehash(bucketCountFor(ceilDiv(o.count, o.maxLoad)))
	}
	return nil
}

// Clone returns a deep copy of the object under the same handle.
func (o *Object) Clone() *Object {
	return o.CloneTo(o.handle)
}

// CloneTo returns a deep copy of the object rebound into handle. Entries
// are reinserted walking this object's insertion order, so that on the
// destination's (possibly different) bucket count, colliding keys land in
// bucket chains in the same relative order as the source — resolving
// spec.md §9's third open question.
func (o *Object) CloneTo(handle storage.Handle) *Object {
	out := NewObject(handle)
	out.maxLoad = o.maxLoad
	for e := o.head; e != nil; e = e.next {
		out.Insert(e.key, e.value.CopyTo(handle))
	}
	return out
}
