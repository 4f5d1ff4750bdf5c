/*
Package jtree implements persistent ordered sets as join-based binary search
trees.

All set algorithms are derived from two primitives:

  - Expose decomposes a tree by one level into either a leaf or a triple
    (left, key, right), in O(1) and without copying the subtrees,
  - JoinMid is the inverse: it builds a tree from such a triple, rebalancing
    according to the configured balancing scheme.

On top of these, Split partitions a tree at a pivot key, and JoinPair
concatenates two trees whose key ranges are ordered. Union, Intersect,
Difference, Filter and Reduce are divide-and-conquer recursions: expose one
operand, split the other at the exposed key, recurse on both halves in
parallel (see package forkjoin), and recombine with JoinMid or JoinPair.
Only JoinMid knows about balancing, so the schemes are interchangeable:

	Balance          | JoinMid                          | height
	-----------------+----------------------------------+-----------
	WeightBalanced   | weight-balanced join, alpha=0.29 | O(log n)
	AVL              | AVL join                         | O(log n)
	Unbalanced       | plain node construction          | O(n) worst

Trees are values. Nodes are never mutated after construction; every update
returns a new tree which shares all untouched subtrees with its predecessor.
Trees may therefore be read from any number of goroutines without locking.
Package paraset wraps a tree in a lock-guarded handle for callers who prefer
in-place updates.

Work and span (for balanced schemes, m = min(|a|,|b|), n = max(|a|,|b|)):

	Operation               | Work              | Span
	------------------------+-------------------+------------
	Expose, JoinMid, Size   | O(1) / O(log n)   | same
	Find, Split, JoinPair   | O(log n)          | O(log n)
	Union, Intersect, Diff  | O(m log(n/m + 1)) | O(log^2 n)
	Filter, Reduce          | O(n)              | O(log n)
	InOrder                 | O(n)              | O(n)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package jtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'paraset'
func tracer() tracing.Trace {
	return tracing.Select("paraset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
