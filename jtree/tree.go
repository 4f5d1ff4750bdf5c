package jtree

// node is an immutable tree node. size and height are cached for the subtree
// rooted at the node; a nil *node is the leaf.
type node[K any] struct {
	key    K
	size   int
	height int
	left   *node[K]
	right  *node[K]
}

func (n *node[K]) sz() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[K]) ht() int {
	if n == nil {
		return 0
	}
	return n.height
}

// mk constructs a node, recomputing the cached fields. It does no balancing.
func mk[K any](l *node[K], k K, r *node[K]) *node[K] {
	return &node[K]{
		key:    k,
		size:   1 + l.sz() + r.sz(),
		height: 1 + max(l.ht(), r.ht()),
		left:   l,
		right:  r,
	}
}

// Tree is a persistent ordered set of keys of type K.
//
// Trees are small values and cheap to copy. A tree is never modified; all
// operations return new trees sharing structure with their operands.
//
// The zero Tree is empty but has no configuration: it may be queried and used
// as an operand together with configured trees, but building a non-empty tree
// requires a tree from New.
type Tree[K any] struct {
	cfg  *config[K]
	root *node[K]
}

// New creates an empty tree with validated configuration.
func New[K any](cfg Config[K]) (Tree[K], error) {
	c, err := newConfig(cfg)
	if err != nil {
		return Tree[K]{}, err
	}
	return Tree[K]{cfg: c}, nil
}

// Must is like New, but panics on invalid configuration.
func Must[K any](cfg Config[K]) Tree[K] {
	t, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns a copy of the effective tree configuration.
func (t Tree[K]) Config() Config[K] {
	if t.cfg == nil {
		return Config[K]{}
	}
	return t.cfg.public
}

// Empty returns the empty tree of t's configuration.
func (t Tree[K]) Empty() Tree[K] {
	return Tree[K]{cfg: t.cfg}
}

// Singleton returns a tree of t's configuration containing only k.
func (t Tree[K]) Singleton(k K) Tree[K] {
	t.assertConfigured("Singleton")
	return Tree[K]{cfg: t.cfg, root: mk[K](nil, k, nil)}
}

// Size returns the number of keys in the tree.
func (t Tree[K]) Size() int {
	return t.root.sz()
}

// IsEmpty reports whether the tree has no keys.
func (t Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the tree height, where 0 means empty.
func (t Tree[K]) Height() int {
	return t.root.ht()
}

func (t Tree[K]) with(root *node[K]) Tree[K] {
	return Tree[K]{cfg: t.cfg, root: root}
}

func (t Tree[K]) assertConfigured(op string) {
	assert(t.cfg != nil, op+" requires a tree created by New")
}

// --- Expose / JoinMid ------------------------------------------------------

// Exposed is a tree decomposed by one level: either a leaf, or a node with a
// left subtree, a key and a right subtree.
//
// The zero Exposed is a leaf.
type Exposed[K any] struct {
	Left   Tree[K]
	Key    K
	Right  Tree[K]
	isNode bool
	cfg    *config[K]
}

// IsLeaf reports whether e is the exposed empty tree.
func (e Exposed[K]) IsLeaf() bool {
	return !e.isNode
}

// Node creates an exposed node. All keys in left must be less than key, and
// all keys in right must be greater than key. This is not checked.
func Node[K any](left Tree[K], key K, right Tree[K]) Exposed[K] {
	return Exposed[K]{
		Left:   left,
		Key:    key,
		Right:  right,
		isNode: true,
		cfg:    pick(left.cfg, right.cfg),
	}
}

// Expose decomposes t by one level. The subtrees of the result are shared
// with t, not copied.
func (t Tree[K]) Expose() Exposed[K] {
	if t.root == nil {
		return Exposed[K]{cfg: t.cfg}
	}
	return Exposed[K]{
		Left:   t.with(t.root.left),
		Key:    t.root.key,
		Right:  t.with(t.root.right),
		isNode: true,
		cfg:    t.cfg,
	}
}

// JoinMid is the inverse of Expose. It builds a tree from an exposed view,
// rebalancing according to the configured scheme.
//
// For an exposed node, all keys of e.Left must be less than e.Key, and all
// keys of e.Right greater. This is not re-checked.
func JoinMid[K any](e Exposed[K]) Tree[K] {
	if !e.isNode {
		return Tree[K]{cfg: e.cfg}
	}
	c := pick(e.cfg, pick(e.Left.cfg, e.Right.cfg))
	assert(c != nil, "JoinMid requires trees created by New")
	return Tree[K]{cfg: c, root: c.joinMid(e.Left.root, e.Key, e.Right.root)}
}

func (c *config[K]) joinMid(l *node[K], k K, r *node[K]) *node[K] {
	return c.bal.join(l, k, r)
}
