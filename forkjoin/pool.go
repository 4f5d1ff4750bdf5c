package forkjoin

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultCutoff is the work estimate below which pairs run sequentially.
	DefaultCutoff = 256
	// DefaultTasksPerProc scales the default task bound with GOMAXPROCS.
	DefaultTasksPerProc = 4
)

// Config configures a Pool.
type Config struct {
	// MaxTasks bounds the number of concurrently running spawned branches.
	// Values <= 0 mean unbounded.
	MaxTasks int64
	// Cutoff is the work estimate below which a pair runs inline.
	// 0 disables the cutoff.
	Cutoff int
	// Registerer, if set, receives a counter of spawned and inlined pairs.
	Registerer prometheus.Registerer
	// Namespace prefixes the metric name. Defaults to "paraset".
	Namespace string
}

func (cfg Config) normalized() Config {
	if cfg.MaxTasks < 0 {
		cfg.MaxTasks = 0
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "paraset"
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Cutoff < 0 {
		return fmt.Errorf("%w: negative cutoff %d", ErrInvalidConfig, cfg.Cutoff)
	}
	return nil
}

// Pool decides whether a pair is forked or run inline.
//
// A nil *Pool is valid and never forks.
type Pool struct {
	sem        *semaphore.Weighted // nil means unbounded
	cutoff     int
	sequential bool
	spawned    atomic.Uint64
	inlined    atomic.Uint64
	metrics    *prometheus.CounterVec
}

// Stats reports how many pairs have been forked and how many ran inline.
type Stats struct {
	Spawned uint64
	Inlined uint64
}

// New creates a pool from a validated configuration.
func New(cfg Config) (*Pool, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	p := &Pool{cutoff: cfg.Cutoff}
	if cfg.MaxTasks > 0 {
		p.sem = semaphore.NewWeighted(cfg.MaxTasks)
	}
	if cfg.Registerer != nil {
		vec, err := registerPairCounter(cfg.Registerer, cfg.Namespace)
		if err != nil {
			return nil, err
		}
		p.metrics = vec
	}
	tracer().Debugf("forkjoin: new pool, max tasks = %d, cutoff = %d", cfg.MaxTasks, cfg.Cutoff)
	return p, nil
}

func registerPairCounter(reg prometheus.Registerer, namespace string) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "forkjoin",
		Name:      "pairs_total",
		Help:      "Number of fork-join pairs, by execution mode.",
	}, []string{"mode"})
	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return vec, nil
}

var defaultPool = sync.OnceValue(func() *Pool {
	p, err := New(Config{
		MaxTasks: int64(DefaultTasksPerProc * runtime.GOMAXPROCS(0)),
		Cutoff:   DefaultCutoff,
	})
	if err != nil {
		panic(err)
	}
	return p
})

// Default returns the shared default pool.
func Default() *Pool {
	return defaultPool()
}

// Unbounded returns a pool which forks every pair, regardless of size.
// It may spawn one goroutine per tree node visited.
func Unbounded() *Pool {
	return &Pool{}
}

// Sequential returns a pool which never forks.
func Sequential() *Pool {
	return &Pool{sequential: true}
}

// Cutoff returns the sequential cutoff of the pool.
func (p *Pool) Cutoff() int {
	if p == nil {
		return 0
	}
	return p.cutoff
}

// Stats returns the pair counters of the pool.
func (p *Pool) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	return Stats{Spawned: p.spawned.Load(), Inlined: p.inlined.Load()}
}

// acquire reports whether a pair with the given work estimate may fork.
// If it returns true, the caller must call release after the spawned branch
// has finished.
func (p *Pool) acquire(work int) bool {
	if p == nil || p.sequential || work < p.cutoff {
		p.count("inlined")
		return false
	}
	if p.sem != nil && !p.sem.TryAcquire(1) {
		p.count("inlined")
		return false
	}
	p.count("spawned")
	return true
}

func (p *Pool) release() {
	if p.sem != nil {
		p.sem.Release(1)
	}
}

func (p *Pool) count(mode string) {
	if p == nil {
		return
	}
	if mode == "spawned" {
		p.spawned.Add(1)
	} else {
		p.inlined.Add(1)
	}
	if p.metrics != nil {
		p.metrics.WithLabelValues(mode).Inc()
	}
}
