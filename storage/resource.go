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

// Package storage provides the pluggable memory-resource abstraction that
// every jsonvalue container is bound to: strings, arrays, objects, and
// values all allocate their backing storage through a Resource rather than
// the bare runtime heap, so a whole tree can be pooled, arena-allocated, or
// released in bulk by swapping the Resource at construction time.
package storage

import "errors"

// ErrResourceMismatch is returned when an operation requires two handles to
// share the same underlying Resource and they do not.
var ErrResourceMismatch = errors.New("storage: resource mismatch")

// Resource is the type-erased allocator interface every container binds to.
// Implementations must be safe for concurrent AddRef/Release from multiple
// goroutines (the refcount is the one part of this package usable across
// goroutines; the containers built on top of a Handle are not).
type Resource interface {
	// Allocate returns a byte slice of length n sourced from this resource.
	// align is advisory (e.g. for pool bucket selection); implementations
	// that don't care about alignment may ignore it.
	Allocate(n, align int) []byte

	// Deallocate returns a slice previously obtained from Allocate back to
	// the resource. Implementations that don't pool may no-op.
	Deallocate(b []byte)

	// AddRef increments the resource's reference count.
	AddRef()

	// Release decrements the resource's reference count, releasing any
	// pooled state once it reaches zero.
	Release()

	// Equal reports whether other refers to the same underlying resource.
	// Two resources are equal only if operations mixing handles bound to
	// each may freely share allocations.
	Equal(other Resource) bool
}

// MaxAlign is the alignment used when callers don't have a more specific
// requirement in mind.
const MaxAlign = 8
