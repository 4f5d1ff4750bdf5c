/*
Package paraset offers ordered sets of keys, backed by persistent join trees
with parallel set operations.

Join Trees

The tree algorithms live in package jtree. Every operation there is built on
a single balancing primitive, JoinMid, which combines a left tree, a key and
a right tree. Split, union, intersection, difference and filtering are
divide-and-conquer recursions over JoinMid, and independent sub-problems run
in parallel (see package forkjoin). Trees are immutable: an operation returns
a new tree which shares structure with its operands, so any tree may be read
by any number of goroutines at the same time.

From a paper by Guy E. Blelloch, Daniel Ferizovic and Yihan Sun, 2016:

Just Join for Parallel Ordered Sets

Ordered sets (and maps when data is associated with each key) are one of the
most important and useful data types. [...] We show that a single function,
join, can be used to implement many other functions on ordered sets, and that
these functions are work efficient and highly parallel. The join function
takes two ordered sets and a key k that is greater than all keys in the first
set and less than all keys in the second set, and returns the union of the
keys. [...] All the balancing criteria are captured in join.

_________________________________________________________________________

Sets

Where trees are values, a Set is a place: a handle holding the current tree
of a logical set which may be mutated from many goroutines. Readers take a
snapshot of the tree and work on it without holding any lock. Writers compute
a new tree from a snapshot and commit it. The commit policy decides what
happens if another writer committed in the meantime:

	Optimistic      the write is recomputed from a fresh snapshot (default)
	LastWriterWins  the write replaces the other one, which is lost

Committed mutations are broadcast to watchers, see Set.Watch.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

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

*/
package paraset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SetError is an error type for the paraset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrSetClosed is flagged when closing a set which has already been closed.
const ErrSetClosed = SetError("set has been closed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")
