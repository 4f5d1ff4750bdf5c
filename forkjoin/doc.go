/*
Package forkjoin provides the fork-join pair primitive used by the parallel
set algorithms of package jtree.

A call to

	a, b := forkjoin.Pair(pool, work, f1, f2)

runs f1 and f2 as independent tasks and returns once both have completed.
f1 and f2 must not share mutable state. There is no cancellation: a forked
branch always runs to completion.

Divide-and-conquer recursion over trees forks at every level. Spawning a
goroutine per tree node would be wasteful, so a Pool bounds the fan-out in two
ways:

  - a sequential cutoff: pairs with an estimated work below Pool.Cutoff run
    inline in the calling goroutine,
  - a task bound: at most MaxTasks spawned branches run at any time. When no
    slot is available, the pair runs inline instead of waiting, so nested
    pairs never deadlock on the bound.

A panic in either branch is re-raised in the goroutine calling Pair, after
both branches have finished. Panics recovered from spawned goroutines are
wrapped in a *PanicError carrying the original value and stack.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package forkjoin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paraset'
func tracer() tracing.Trace {
	return tracing.Select("paraset")
}
