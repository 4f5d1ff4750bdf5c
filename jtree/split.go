package jtree

// Find searches for a key equal to k and returns the key as stored in the tree.
func (t Tree[K]) Find(k K) (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n != nil {
		switch d := t.cfg.cmp(k, n.key); {
		case d < 0:
			n = n.left
		case d > 0:
			n = n.right
		default:
			return n.key, true
		}
	}
	return zero, false
}

// Contains reports whether k is a member of t.
func (t Tree[K]) Contains(k K) bool {
	_, found := t.Find(k)
	return found
}

// Min returns the smallest key of t.
func (t Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return minKey(t.root), true
}

// Max returns the largest key of t.
func (t Tree[K]) Max() (K, bool) {
	var zero K
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

func minKey[K any](n *node[K]) K {
	assert(n != nil, "minKey called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n.key
}

// Split partitions t at k into the keys less than k and the keys greater
// than k, and reports whether k itself is a member of t.
func (t Tree[K]) Split(k K) (less Tree[K], found bool, greater Tree[K]) {
	if t.root == nil {
		return t, false, t
	}
	l, found, r := t.cfg.split(t.root, k)
	return t.with(l), found, t.with(r)
}

// split recurses into the side containing k and rebuilds the untouched side
// with joinMid. Subtrees off the search path are shared.
func (c *config[K]) split(n *node[K], k K) (*node[K], bool, *node[K]) {
	if n == nil {
		return nil, false, nil
	}
	switch d := c.cmp(k, n.key); {
	case d < 0:
		ll, found, lr := c.split(n.left, k)
		return ll, found, c.joinMid(lr, n.key, n.right)
	case d > 0:
		rl, found, rr := c.split(n.right, k)
		return c.joinMid(n.left, n.key, rl), found, rr
	}
	return n.left, true, n.right
}

// JoinPair concatenates t and right. Every key of t must be less than every
// key of right. This is not checked.
func (t Tree[K]) JoinPair(right Tree[K]) Tree[K] {
	c := pick(t.cfg, right.cfg)
	if c == nil {
		return t // both empty
	}
	return Tree[K]{cfg: c, root: c.joinPair(t.root, right.root)}
}

func (c *config[K]) joinPair(l, r *node[K]) *node[K] {
	if r == nil {
		return l
	}
	m := minKey(r)
	_, _, reduced := c.split(r, m)
	return c.joinMid(l, m, reduced)
}

// Insert returns a tree containing all keys of t and k. If t already contains
// a key equal to k, it is replaced by k.
func (t Tree[K]) Insert(k K) Tree[K] {
	t.assertConfigured("Insert")
	l, _, r := t.cfg.split(t.root, k)
	return t.with(t.cfg.joinMid(l, k, r))
}

// Delete returns a tree containing all keys of t except k.
func (t Tree[K]) Delete(k K) Tree[K] {
	if t.root == nil {
		return t
	}
	l, _, r := t.cfg.split(t.root, k)
	return t.with(t.cfg.joinPair(l, r))
}

// InsertAll returns a tree containing all keys of t and all of keys.
func (t Tree[K]) InsertAll(keys ...K) Tree[K] {
	if len(keys) == 0 {
		return t
	}
	return t.Union(t.Build(keys...))
}
