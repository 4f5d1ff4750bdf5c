package jtree

import "github.com/npillmayer/paraset/forkjoin"

// Union returns a tree containing all keys which are in t or in other.
//
// If either operand is empty, the other one is returned as is. For keys
// present in both trees, the key stored in t is kept.
func (t Tree[K]) Union(other Tree[K]) Tree[K] {
	c := pick(t.cfg, other.cfg)
	if c == nil {
		return t
	}
	return Tree[K]{cfg: c, root: c.union(t.root, other.root)}
}

func (c *config[K]) union(a, b *node[K]) *node[K] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	bl, _, br := c.split(b, a.key)
	l, r := forkjoin.Pair(c.pool, a.size+b.size,
		func() *node[K] { return c.union(a.left, bl) },
		func() *node[K] { return c.union(a.right, br) },
	)
	return c.joinMid(l, a.key, r)
}

// Intersect returns a tree containing all keys which are in both t and other.
func (t Tree[K]) Intersect(other Tree[K]) Tree[K] {
	c := pick(t.cfg, other.cfg)
	if c == nil {
		return t
	}
	return Tree[K]{cfg: c, root: c.intersect(t.root, other.root)}
}

func (c *config[K]) intersect(a, b *node[K]) *node[K] {
	if a == nil || b == nil {
		return nil
	}
	bl, found, br := c.split(b, a.key)
	l, r := forkjoin.Pair(c.pool, a.size+b.size,
		func() *node[K] { return c.intersect(a.left, bl) },
		func() *node[K] { return c.intersect(a.right, br) },
	)
	if found {
		return c.joinMid(l, a.key, r)
	}
	return c.joinPair(l, r)
}

// Difference returns a tree containing all keys of t which are not in other.
//
// If other is empty, t is returned as is.
func (t Tree[K]) Difference(other Tree[K]) Tree[K] {
	c := pick(t.cfg, other.cfg)
	if c == nil {
		return t
	}
	return Tree[K]{cfg: c, root: c.difference(t.root, other.root)}
}

func (c *config[K]) difference(a, b *node[K]) *node[K] {
	if a == nil {
		return nil
	}
	if b == nil {
		return a
	}
	bl, found, br := c.split(b, a.key)
	l, r := forkjoin.Pair(c.pool, a.size+b.size,
		func() *node[K] { return c.difference(a.left, bl) },
		func() *node[K] { return c.difference(a.right, br) },
	)
	if found {
		return c.joinPair(l, r)
	}
	return c.joinMid(l, a.key, r)
}
