package paraset

import (
	"context"
	"fmt"
)

// Op names the kind of a committed write.
type Op int

const (
	OpInsert Op = iota + 1 // a key has been inserted
	OpDelete               // a key has been deleted
	OpUpdate               // the tree has been replaced by Update
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpUpdate:
		return "update"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Change describes a committed write. Key is unset for OpUpdate.
// Size is the number of members after the write.
type Change[K any] struct {
	Op      Op
	Key     K
	Size    int
	Version uint64
}

// Watch subscribes to the changes committed to s. The returned channel is
// closed when ctx is done or s is closed.
//
// Publishing does not wait for watchers. A change arriving while the
// watcher's buffer is full is dropped for that watcher and counted in
// Stats.Dropped; gaps show in Change.Version.
func (s *Set[K]) Watch(ctx context.Context) <-chan Change[K] {
	out := make(chan Change[K], s.opts.watchBuf)
	if s.closed.Load() || ctx.Err() != nil {
		close(out)
		return out
	}
	// The subscription is bound to the caster only. It is ended by Unsub or
	// by closing the caster, never by ctx, so its channel is closed once.
	sub, ok := s.cast.Sub(context.Background(), s.opts.watchBuf)
	if !ok {
		close(out)
		return out
	}
	T().Debugf("paraset: new watcher")
	go s.forward(ctx, sub, out)
	return out
}

// forward passes changes from a caster subscription to out until ctx is done
// or s is closed.
func (s *Set[K]) forward(ctx context.Context, sub chan interface{}, out chan<- Change[K]) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			s.cast.Unsub(sub)
			return
		case <-s.done:
			return // Close closes the caster with all subscriptions
		case msg, ok := <-sub:
			if !ok {
				return
			}
			change, isChange := msg.(Change[K])
			if !isChange {
				continue
			}
			select {
			case out <- change:
			default:
				s.dropped.Add(1)
			}
		}
	}
}

func (s *Set[K]) publish(change Change[K]) {
	if s.closed.Load() {
		return
	}
	s.cast.TryPub(change)
}

// Close ends all subscriptions of s. A closed set remains usable, but writes
// are no longer broadcast and Watch returns closed channels.
func (s *Set[K]) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrSetClosed
	}
	close(s.done)
	s.cast.Close()
	T().Debugf("paraset: set closed at version %d", s.Version())
	return nil
}
