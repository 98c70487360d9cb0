/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
****************************************************************************/

package storage

import "sync"

// Size classes for the pooled resource. Allocations larger than the top
// class fall back to a plain make([]byte, n).
const (
	tinyClass   = 64
	smallClass  = 256
	mediumClass = 1024
	largeClass  = 4096
)

// poolResource is a Resource backed by four sync.Pool size classes, for
// workloads that parse or build many short-lived Value trees and want to
// avoid handing the garbage collector a fresh slice per string/array/
// object backing store.
type poolResource struct {
	refCounted
	tiny, small, medium, large sync.Pool
}

// NewPoolResource returns a Resource whose Allocate calls are served from
// four size-classed sync.Pool buckets (64/256/1024/4096 bytes), falling
// back to a direct allocation above the largest class. Deallocate returns
// the slice to its size class for reuse by a later Allocate.
func NewPoolResource() Resource {
	r := &poolResource{}
	r.count.Store(1)
	r.tiny.New = func() any { return make([]byte, 0, tinyClass) }
	r.small.New = func() any { return make([]byte, 0, smallClass) }
	r.medium.New = func() any { return make([]byte, 0, mediumClass) }
	r.large.New = func() any { return make([]byte, 0, largeClass) }
	return r
}

func (r *poolResource) classFor(n int) (*sync.Pool, int) {
	switch {
	case n <= tinyClass:
		return &r.tiny, tinyClass
	case n <= smallClass:
		return &r.small, smallClass
	case n <= mediumClass:
		return &r.medium, mediumClass
	case n <= largeClass:
		return &r.large, largeClass
	default:
		return nil, 0
	}
}

func (r *poolResource) Allocate(n, _ int) []byte {
	pool, classSize := r.classFor(n)
	if pool == nil {
		return make([]byte, n)
	}
	buf := pool.Get().([]byte)
	if classSize < n {
		// size class table guarantees this never happens, but guard anyway.
		return make([]byte, n)
	}
	return buf[:n]
}

func (r *poolResource) Deallocate(b []byte) {
	pool, class := r.classFor(cap(b))
	if pool == nil || cap(b) != class {
		return
	}
	pool.Put(b[:0])
}

func (r *poolResource) AddRef() { r.addRef() }

func (r *poolResource) Release() { r.release() }

func (r *poolResource) Equal(other Resource) bool {
	o, ok := other.(*poolResource)
	return ok && o == r
}
