package jtree

import (
	"iter"
	"slices"

	"github.com/npillmayer/paraset/forkjoin"
)

// Filter returns a tree containing the keys of t for which pred holds.
//
// pred is called concurrently from multiple goroutines and must be safe
// for concurrent use.
func (t Tree[K]) Filter(pred func(K) bool) Tree[K] {
	if t.root == nil {
		return t
	}
	return t.with(t.cfg.filter(t.root, pred))
}

func (c *config[K]) filter(n *node[K], pred func(K) bool) *node[K] {
	if n == nil {
		return nil
	}
	l, r := forkjoin.Pair(c.pool, n.size,
		func() *node[K] { return c.filter(n.left, pred) },
		func() *node[K] { return c.filter(n.right, pred) },
	)
	if pred(n.key) {
		return c.joinMid(l, n.key, r)
	}
	return c.joinPair(l, r)
}

// Reduce combines all keys of t in ascending order with op, where identity
// is the neutral element of op.
//
// op must be associative, but need not be commutative. It is called
// concurrently and must be safe for concurrent use. For a non-associative op
// the result depends on the shape of the tree.
func (t Tree[K]) Reduce(op func(K, K) K, identity K) K {
	return MapReduce(t, func(k K) K { return k }, op, identity)
}

// MapReduce maps every key of t with f and combines the results in ascending
// key order with op. The requirements of Reduce apply to op and identity.
func MapReduce[K, V any](t Tree[K], f func(K) V, op func(V, V) V, identity V) V {
	if t.root == nil {
		return identity
	}
	return mapReduce(t.cfg.pool, t.root, f, op, identity)
}

func mapReduce[K, V any](pool *forkjoin.Pool, n *node[K], f func(K) V, op func(V, V) V, identity V) V {
	if n == nil {
		return identity
	}
	l, r := forkjoin.Pair(pool, n.size,
		func() V { return mapReduce(pool, n.left, f, op, identity) },
		func() V { return mapReduce(pool, n.right, f, op, identity) },
	)
	return op(l, op(f(n.key), r))
}

// InOrder returns the keys of t in ascending order.
func (t Tree[K]) InOrder() []K {
	out := make([]K, 0, t.Size())
	return appendInOrder(out, t.root)
}

func appendInOrder[K any](out []K, n *node[K]) []K {
	for n != nil {
		out = appendInOrder(out, n.left)
		out = append(out, n.key)
		n = n.right
	}
	return out
}

// All returns an iterator over the keys of t in ascending order.
func (t Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(t.root, yield)
	}
}

func walk[K any](n *node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.key) && walk(n.right, yield)
}

// Build returns a tree of t's configuration containing exactly the given
// keys; the content of t is not used. Duplicates are removed, the first
// occurrence of a key wins.
//
// The result is perfectly balanced and valid for every balancing scheme.
func (t Tree[K]) Build(keys ...K) Tree[K] {
	t.assertConfigured("Build")
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, t.cfg.cmp)
	sorted = slices.CompactFunc(sorted, func(a, b K) bool {
		return t.cfg.cmp(a, b) == 0
	})
	return t.with(t.cfg.build(sorted))
}

func (c *config[K]) build(sorted []K) *node[K] {
	if len(sorted) == 0 {
		return nil
	}
	mid := len(sorted) / 2
	l, r := forkjoin.Pair(c.pool, len(sorted),
		func() *node[K] { return c.build(sorted[:mid]) },
		func() *node[K] { return c.build(sorted[mid+1:]) },
	)
	return mk(l, sorted[mid], r)
}
