package jtree

import "fmt"

// balancer is a balancing scheme. join builds a node from l, k, r, where all
// keys in l are less than k and all keys in r are greater, restoring the
// scheme's balance invariant on the way. check verifies the invariant at a
// single node.
type balancer[K any] interface {
	join(l *node[K], k K, r *node[K]) *node[K]
	check(n *node[K]) error
}

func rotateLeft[K any](n *node[K]) *node[K] {
	r := n.right
	assert(r != nil, "rotateLeft called without right child")
	return mk(mk(n.left, n.key, r.left), r.key, r.right)
}

func rotateRight[K any](n *node[K]) *node[K] {
	l := n.left
	assert(l != nil, "rotateRight called without left child")
	return mk(l.left, l.key, mk(l.right, n.key, n.right))
}

// --- Unbalanced ------------------------------------------------------------

type unbalanced[K any] struct{}

func (unbalanced[K]) join(l *node[K], k K, r *node[K]) *node[K] {
	return mk(l, k, r)
}

func (unbalanced[K]) check(*node[K]) error {
	return nil
}

// --- Weight-balanced -------------------------------------------------------

// Weight balance with alpha = 29/100, which is below 1-1/sqrt(2) as required
// for join to restore balance with at most a double rotation per level.
// See Blelloch, Ferizovic, Sun: "Just Join for Parallel Ordered Sets" (2016).
const (
	alphaNum   = 29
	alphaDenom = 100
)

func weight[K any](n *node[K]) int {
	return n.sz() + 1
}

// like reports whether two subtrees of weights a and b may be siblings.
func like(a, b int) bool {
	total := alphaNum * (a + b)
	return total <= alphaDenom*a && total <= alphaDenom*b
}

type weightBalanced[K any] struct{}

func (wb weightBalanced[K]) join(l *node[K], k K, r *node[K]) *node[K] {
	wl, wr := weight(l), weight(r)
	switch {
	case like(wl, wr):
		return mk(l, k, r)
	case wl > wr:
		return wb.joinRight(l, k, r)
	}
	return wb.joinLeft(l, k, r)
}

// joinRight descends the right spine of the heavier tree l until it finds a
// subtree of weight comparable to r.
func (wb weightBalanced[K]) joinRight(l *node[K], k K, r *node[K]) *node[K] {
	if like(weight(l), weight(r)) {
		return mk(l, k, r)
	}
	assert(l != nil, "weight-balanced joinRight descended into leaf")
	t := wb.joinRight(l.right, k, r)
	wll := weight(l.left)
	if like(wll, weight(t)) {
		return mk(l.left, l.key, t)
	}
	if like(wll, weight(t.left)) && like(wll+weight(t.left), weight(t.right)) {
		return rotateLeft(mk(l.left, l.key, t))
	}
	return rotateLeft(mk(l.left, l.key, rotateRight(t)))
}

func (wb weightBalanced[K]) joinLeft(l *node[K], k K, r *node[K]) *node[K] {
	if like(weight(l), weight(r)) {
		return mk(l, k, r)
	}
	assert(r != nil, "weight-balanced joinLeft descended into leaf")
	t := wb.joinLeft(l, k, r.left)
	wrr := weight(r.right)
	if like(weight(t), wrr) {
		return mk(t, r.key, r.right)
	}
	if like(weight(t.right), wrr) && like(weight(t.left), weight(t.right)+wrr) {
		return rotateRight(mk(t, r.key, r.right))
	}
	return rotateRight(mk(rotateLeft(t), r.key, r.right))
}

func (weightBalanced[K]) check(n *node[K]) error {
	if wl, wr := weight(n.left), weight(n.right); !like(wl, wr) {
		return fmt.Errorf("%w: subtree weights %d and %d out of balance", ErrInvariant, wl, wr)
	}
	return nil
}

// --- AVL -------------------------------------------------------------------

type avlBalanced[K any] struct{}

func (avl avlBalanced[K]) join(l *node[K], k K, r *node[K]) *node[K] {
	switch hl, hr := l.ht(), r.ht(); {
	case hl > hr+1:
		return avl.joinRight(l, k, r)
	case hr > hl+1:
		return avl.joinLeft(l, k, r)
	}
	return mk(l, k, r)
}

// joinRight descends the right spine of the taller tree l until it finds a
// subtree at most one level taller than r.
func (avl avlBalanced[K]) joinRight(l *node[K], k K, r *node[K]) *node[K] {
	c := l.right
	if c.ht() <= r.ht()+1 {
		t := mk(c, k, r)
		if t.ht() <= l.left.ht()+1 {
			return mk(l.left, l.key, t)
		}
		return rotateLeft(mk(l.left, l.key, rotateRight(t)))
	}
	t := avl.joinRight(c, k, r)
	joined := mk(l.left, l.key, t)
	if t.ht() <= l.left.ht()+1 {
		return joined
	}
	return rotateLeft(joined)
}

func (avl avlBalanced[K]) joinLeft(l *node[K], k K, r *node[K]) *node[K] {
	c := r.left
	if c.ht() <= l.ht()+1 {
		t := mk(l, k, c)
		if t.ht() <= r.right.ht()+1 {
			return mk(t, r.key, r.right)
		}
		return rotateRight(mk(rotateLeft(t), r.key, r.right))
	}
	t := avl.joinLeft(l, k, c)
	joined := mk(t, r.key, r.right)
	if t.ht() <= r.right.ht()+1 {
		return joined
	}
	return rotateRight(joined)
}

func (avlBalanced[K]) check(n *node[K]) error {
	hl, hr := n.left.ht(), n.right.ht()
	if hl > hr+1 || hr > hl+1 {
		return fmt.Errorf("%w: sibling heights %d and %d differ by more than one", ErrInvariant, hl, hr)
	}
	return nil
}
