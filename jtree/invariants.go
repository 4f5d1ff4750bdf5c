package jtree

import "fmt"

// Check validates structural tree invariants:
//
//   - keys are strictly ascending in-order (BST ordering),
//   - every node's cached size and height match its subtrees,
//   - every node satisfies the balance invariant of the configured scheme.
//
// Check walks the whole tree and is meant for tests and debugging.
func (t Tree[K]) Check() error {
	if t.root == nil {
		return nil
	}
	if t.cfg == nil {
		return fmt.Errorf("%w: non-empty tree without configuration", ErrInvariant)
	}
	_, _, err := t.checkNode(t.root, nil, nil)
	return err
}

func (t Tree[K]) checkNode(n *node[K], lo, hi *K) (size int, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && t.cfg.cmp(*lo, n.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && t.cfg.cmp(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.key, *hi)
	}
	ls, lh, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rs, rh, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	size, height = 1+ls+rs, 1+max(lh, rh)
	if n.size != size {
		return 0, 0, fmt.Errorf("%w: node %v caches size %d, has %d", ErrInvariant, n.key, n.size, size)
	}
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v caches height %d, has %d", ErrInvariant, n.key, n.height, height)
	}
	if err := t.cfg.bal.check(n); err != nil {
		return 0, 0, fmt.Errorf("at key %v: %w", n.key, err)
	}
	return size, height, nil
}
