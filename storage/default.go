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

// heapResource is the default Resource: every Allocate is a fresh
// make([]byte, n) off the Go heap and Deallocate is a no-op, relying on the
// garbage collector the way idiomatic Go code ordinarily does. It never
// actually reaches a zero refcount in practice (the process-wide default is
// shared forever), but still tracks addref/release so Equal-based resource
// bookkeeping in object/array stays consistent.
type heapResource struct {
	refCounted
}

func newHeapResource() *heapResource {
	r := &heapResource{}
	r.count.Store(1)
	return r
}

func (r *heapResource) Allocate(n, _ int) []byte {
	return make([]byte, n)
}

func (r *heapResource) Deallocate(_ []byte) {}

func (r *heapResource) AddRef() { r.addRef() }

func (r *heapResource) Release() { r.release() }

func (r *heapResource) Equal(other Resource) bool {
	o, ok := other.(*heapResource)
	return ok && o == r
}

var (
	defaultMu  sync.RWMutex
	defaultRes Resource
	defaultOne sync.Once
)

// Default returns the process-wide default Resource, constructing the
// built-in heap-backed one on first use.
func Default() Resource {
	defaultOne.Do(func() {
		defaultMu.Lock()
		defaultRes = newHeapResource()
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRes
}

// SetDefault replaces the process-wide default Resource. It is not safe to
// call concurrently with Default(); applications should set this once,
// during startup, before any Value trees are constructed with the default
// resource.
func SetDefault(res Resource) {
	defaultOne.Do(func() {})
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRes = res
}

// NewDefaultHandle returns a Handle bound to the process-wide default
// Resource.
func NewDefaultHandle() Handle {
	return NewHandle(Default())
}
