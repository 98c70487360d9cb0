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

import "sync/atomic"

// Handle is a move-friendly, ref-counted pointer to a Resource. The zero
// Handle holds no resource and behaves as an inert no-op; Value trees that
// need guaranteed storage should always construct a Handle from Default()
// or a caller-supplied Resource.
//
// Handle itself is not safe for concurrent mutation (assigning a new
// Resource into it from two goroutines races), but AddRef/Release on the
// underlying Resource are, matching the single-tree-single-goroutine model
// the rest of this module assumes.
type Handle struct {
	res Resource
}

// NewHandle wraps res in a Handle, taking a reference. Passing a nil
// Resource produces a usable, storage-less Handle (Allocate falls back to
// make([]byte, n), Deallocate is a no-op).
func NewHandle(res Resource) Handle {
	if res != nil {
		res.AddRef()
	}
	return Handle{res: res}
}

// Clone returns a new Handle referring to the same Resource, bumping the
// refcount.
func (h Handle) Clone() Handle {
	if h.res != nil {
		h.res.AddRef()
	}
	return Handle{res: h.res}
}

// Release drops this Handle's reference. After Release, the Handle must
// not be used again.
func (h Handle) Release() {
	if h.res != nil {
		h.res.Release()
	}
}

// Resource returns the underlying Resource, or nil if this Handle is
// storage-less.
func (h Handle) Resource() Resource {
	return h.res
}

// Equal reports whether two handles are bound to the same underlying
// Resource.
func (h Handle) Equal(other Handle) bool {
	if h.res == nil || other.res == nil {
		return h.res == other.res
	}
	return h.res.Equal(other.res)
}

// Allocate sources n bytes from the underlying resource, or returns a
// plain make([]byte, n) if this Handle is storage-less.
func (h Handle) Allocate(n, align int) []byte {
	if h.res == nil {
		return make([]byte, n)
	}
	return h.res.Allocate(n, align)
}

// Deallocate returns b to the underlying resource, if any.
func (h Handle) Deallocate(b []byte) {
	if h.res != nil {
		h.res.Deallocate(b)
	}
}

// refCounted is an embeddable addref/release implementation shared by the
// concrete Resource types in this package.
type refCounted struct {
	count atomic.Int64
}

func (r *refCounted) addRef() {
	r.count.Add(1)
}

// release decrements the count and reports whether it reached zero.
func (r *refCounted) release() bool {
	return r.count.Add(-1) == 0
}
