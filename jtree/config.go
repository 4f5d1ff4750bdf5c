package jtree

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/paraset/forkjoin"
)

// Balance selects the balancing scheme applied by JoinMid.
type Balance int

const (
	// WeightBalanced keeps subtree weights within a factor of alpha = 0.29.
	WeightBalanced Balance = iota
	// AVL keeps sibling heights within a difference of one.
	AVL
	// Unbalanced performs no rebalancing at all. Tree height depends on the
	// order of insertion and may degrade to O(n).
	Unbalanced
)

func (b Balance) String() string {
	switch b {
	case WeightBalanced:
		return "weight-balanced"
	case AVL:
		return "AVL"
	case Unbalanced:
		return "unbalanced"
	}
	return fmt.Sprintf("Balance(%d)", int(b))
}

// Config configures a family of trees.
//
// Trees created from the same configuration (and trees derived from them) may
// be combined with each other. Combining trees with differing comparison
// functions yields undefined results.
type Config[K any] struct {
	// Compare is a strict total order on keys, returning a negative number,
	// zero, or a positive number. It is required.
	Compare func(a, b K) int
	// Balance selects the balancing scheme. Defaults to WeightBalanced.
	Balance Balance
	// Pool bounds parallel fan-out. Nil selects forkjoin.Default().
	Pool *forkjoin.Pool
}

// Ordered returns a configuration for keys with a natural order.
func Ordered[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Pool == nil {
		cfg.Pool = forkjoin.Default()
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Balance < WeightBalanced || cfg.Balance > Unbalanced {
		return fmt.Errorf("%w: unknown balancing scheme %v", ErrInvalidConfig, cfg.Balance)
	}
	return nil
}

// config is the shared, immutable environment of a family of trees.
type config[K any] struct {
	public Config[K]
	cmp    func(a, b K) int
	bal    balancer[K]
	pool   *forkjoin.Pool
}

func newConfig[K any](cfg Config[K]) (*config[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	c := &config[K]{
		public: cfg,
		cmp:    cfg.Compare,
		pool:   cfg.Pool,
	}
	switch cfg.Balance {
	case WeightBalanced:
		c.bal = weightBalanced[K]{}
	case AVL:
		c.bal = avlBalanced[K]{}
	default:
		c.bal = unbalanced[K]{}
	}
	tracer().Debugf("jtree: new tree configuration, balance = %v", cfg.Balance)
	return c, nil
}

// pick returns the first non-nil configuration.
func pick[K any](a, b *config[K]) *config[K] {
	if a != nil {
		return a
	}
	return b
}
