package paraset

import (
	"cmp"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/paraset/jtree"
	"github.com/puzpuzpuz/xsync/v3"
)

// CommitPolicy decides how a Set handles concurrent writers.
type CommitPolicy int

const (
	// Optimistic commits a write only if no other write has been committed
	// since the writer took its snapshot. Otherwise the write is recomputed
	// from a fresh snapshot. Writes are never lost.
	Optimistic CommitPolicy = iota
	// LastWriterWins commits unconditionally. Of two writers racing on the
	// same snapshot, the one committing first is lost.
	LastWriterWins
)

func (p CommitPolicy) String() string {
	switch p {
	case Optimistic:
		return "optimistic"
	case LastWriterWins:
		return "last-writer-wins"
	}
	return fmt.Sprintf("CommitPolicy(%d)", int(p))
}

// DefaultWatchBuffer is the number of changes buffered per watcher.
const DefaultWatchBuffer = 64

type options struct {
	policy   CommitPolicy
	watchBuf uint
}

// Option configures a Set.
type Option func(*options)

// WithPolicy sets the commit policy. The default is Optimistic.
func WithPolicy(p CommitPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithWatchBuffer sets the number of changes buffered for each watcher.
// Changes arriving at a full buffer are dropped for that watcher.
func WithWatchBuffer(n uint) Option {
	return func(o *options) {
		o.watchBuf = n
	}
}

// Set is a mutable handle to an ordered set, safe for concurrent use.
//
// A Set holds the current version of a persistent jtree.Tree. Reads operate
// on a snapshot; writes replace the tree according to the set's CommitPolicy.
type Set[K any] struct {
	mu      *xsync.RBMutex
	tree    jtree.Tree[K] // guarded by mu
	version uint64        // guarded by mu
	opts    options
	cast    *caster.Caster
	closed  atomic.Bool
	done    chan struct{} // closed by Close
	commits atomic.Uint64
	retries atomic.Uint64
	dropped atomic.Uint64
}

// New creates an empty set with trees configured by cfg.
func New[K any](cfg jtree.Config[K], opts ...Option) (*Set[K], error) {
	tree, err := jtree.New(cfg)
	if err != nil {
		return nil, err
	}
	o := options{policy: Optimistic, watchBuf: DefaultWatchBuffer}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy != Optimistic && o.policy != LastWriterWins {
		return nil, fmt.Errorf("%w: unknown commit policy %v", ErrIllegalArguments, o.policy)
	}
	if o.watchBuf == 0 {
		return nil, fmt.Errorf("%w: watch buffer must not be empty", ErrIllegalArguments)
	}
	T().Debugf("paraset: new set, policy = %v, balance = %v", o.policy, cfg.Balance)
	return newSet(tree, o), nil
}

// NewOrdered creates an empty set for keys with a natural order.
// It panics if an option is invalid.
func NewOrdered[K cmp.Ordered](opts ...Option) *Set[K] {
	s, err := New(jtree.Ordered[K](), opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newSet[K any](tree jtree.Tree[K], o options) *Set[K] {
	return &Set[K]{
		mu:   xsync.NewRBMutex(),
		tree: tree,
		opts: o,
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
}

// Policy returns the commit policy of s.
func (s *Set[K]) Policy() CommitPolicy {
	return s.opts.policy
}

// --- Reading ---------------------------------------------------------------

func (s *Set[K]) snapshot() (jtree.Tree[K], uint64) {
	tok := s.mu.RLock()
	defer s.mu.RUnlock(tok)
	return s.tree, s.version
}

// Snapshot returns the current tree. The tree is immutable and stays valid
// regardless of later mutations of s.
func (s *Set[K]) Snapshot() jtree.Tree[K] {
	tree, _ := s.snapshot()
	return tree
}

// Version returns the number of writes committed to s.
func (s *Set[K]) Version() uint64 {
	_, v := s.snapshot()
	return v
}

// Contains reports whether k is a member of s.
func (s *Set[K]) Contains(k K) bool {
	return s.Snapshot().Contains(k)
}

// Find returns the member of s equal to k, if any.
func (s *Set[K]) Find(k K) (K, bool) {
	return s.Snapshot().Find(k)
}

// Size returns the number of members of s.
func (s *Set[K]) Size() int {
	return s.Snapshot().Size()
}

// IsEmpty reports whether s has no members.
func (s *Set[K]) IsEmpty() bool {
	return s.Snapshot().IsEmpty()
}

// InOrder returns the members of s in ascending order.
func (s *Set[K]) InOrder() []K {
	return s.Snapshot().InOrder()
}

// All returns an iterator over the members of s in ascending order.
// The iteration covers the snapshot taken at the time All is called.
func (s *Set[K]) All() iter.Seq[K] {
	return s.Snapshot().All()
}

// Clone returns a new set starting with the current members of s. The clone
// shares the tree with s but has its own version history and no watchers.
func (s *Set[K]) Clone() *Set[K] {
	return newSet(s.Snapshot(), s.opts)
}

// --- Writing ---------------------------------------------------------------

// Insert adds k to s. If s already holds a key equal to k, it is replaced.
func (s *Set[K]) Insert(k K) {
	s.commit(OpInsert, k, func(t jtree.Tree[K]) jtree.Tree[K] {
		return t.Insert(k)
	})
}

// Delete removes k from s.
func (s *Set[K]) Delete(k K) {
	s.commit(OpDelete, k, func(t jtree.Tree[K]) jtree.Tree[K] {
		return t.Delete(k)
	})
}

// InsertAll adds all of keys to s in a single write.
func (s *Set[K]) InsertAll(keys ...K) {
	if len(keys) == 0 {
		return
	}
	s.Update(func(t jtree.Tree[K]) jtree.Tree[K] {
		return t.InsertAll(keys...)
	})
}

// Update replaces the tree of s by f(tree).
//
// f must be a pure function of its argument: under the Optimistic policy it
// may be called more than once. f must return a tree derived from its
// argument, or at least of the same configuration.
func (s *Set[K]) Update(f func(jtree.Tree[K]) jtree.Tree[K]) {
	var zero K
	s.commit(OpUpdate, zero, f)
}

// commit computes a new tree from a snapshot without holding a lock, then
// swaps it in under the write lock.
func (s *Set[K]) commit(op Op, k K, f func(jtree.Tree[K]) jtree.Tree[K]) {
	for {
		base, seen := s.snapshot()
		next := f(base)
		s.mu.Lock()
		if s.opts.policy == Optimistic && s.version != seen {
			current := s.version
			s.mu.Unlock()
			s.retries.Add(1)
			T().Debugf("paraset: %v conflicts at version %d (have %d), retrying", op, current, seen)
			continue
		}
		s.tree = next
		s.version++
		change := Change[K]{Op: op, Key: k, Size: next.Size(), Version: s.version}
		s.mu.Unlock()
		s.commits.Add(1)
		s.publish(change)
		return
	}
}

// --- Statistics ------------------------------------------------------------

// Stats counts the writes of a set.
type Stats struct {
	Commits uint64 // committed writes
	Retries uint64 // writes recomputed after a conflict
	Dropped uint64 // changes not delivered to a watcher with a full buffer
}

// Stats returns the write counters of s.
func (s *Set[K]) Stats() Stats {
	return Stats{
		Commits: s.commits.Load(),
		Retries: s.retries.Load(),
		Dropped: s.dropped.Load(),
	}
}
