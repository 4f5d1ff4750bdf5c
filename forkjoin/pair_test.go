package forkjoin

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fib(p *Pool, n int) int {
	if n < 2 {
		return n
	}
	a, b := Pair(p, 1<<n,
		func() int { return fib(p, n-1) },
		func() int { return fib(p, n-2) },
	)
	return a + b
}

func TestPairReturnsBothResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	for name, p := range map[string]*Pool{
		"nil":        nil,
		"sequential": Sequential(),
		"unbounded":  Unbounded(),
		"default":    Default(),
	} {
		a, s := Pair(p, 1000,
			func() int { return 42 },
			func() string { return "hello" },
		)
		assert.Equal(t, 42, a, name)
		assert.Equal(t, "hello", s, name)
	}
}

func TestPairRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	p, err := New(Config{MaxTasks: 2, Cutoff: 4})
	require.NoError(t, err)
	assert.Equal(t, 6765, fib(p, 20))
	stats := p.Stats()
	assert.Greater(t, stats.Inlined, uint64(0))
}

func TestSequentialNeverSpawns(t *testing.T) {
	p := Sequential()
	assert.Equal(t, 610, fib(p, 15))
	assert.Zero(t, p.Stats().Spawned)
}

func TestCutoffRunsInline(t *testing.T) {
	p, err := New(Config{Cutoff: 100})
	require.NoError(t, err)
	Run(p, 99, func() {}, func() {})
	assert.Equal(t, Stats{Inlined: 1}, p.Stats())
	Run(p, 100, func() {}, func() {})
	assert.Equal(t, Stats{Spawned: 1, Inlined: 1}, p.Stats())
}

func TestTaskBoundDoesNotDeadlock(t *testing.T) {
	p, err := New(Config{MaxTasks: 1})
	require.NoError(t, err)
	var leaves atomic.Int64
	var work func(depth int)
	work = func(depth int) {
		if depth == 0 {
			leaves.Add(1)
			return
		}
		Run(p, 1, func() { work(depth - 1) }, func() { work(depth - 1) })
	}
	work(8)
	assert.Equal(t, int64(256), leaves.Load())
	stats := p.Stats()
	assert.Equal(t, uint64(255), stats.Spawned+stats.Inlined)
	assert.Greater(t, stats.Spawned, uint64(0))
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(Config{Cutoff: -1})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestPanicInSpawnedBranchReachesCaller(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	boom := errors.New("boom")
	var f2Done atomic.Bool
	defer func() {
		v := recover()
		require.NotNil(t, v, "expected panic to propagate")
		pe, ok := v.(*PanicError)
		require.True(t, ok, "expected *PanicError, got %T", v)
		assert.ErrorIs(t, pe, boom)
		assert.NotEmpty(t, pe.Stack)
		assert.True(t, f2Done.Load(), "second branch must complete before re-panic")
	}()
	Pair(Unbounded(), 1,
		func() int { panic(boom) },
		func() int { f2Done.Store(true); return 1 },
	)
}

func TestPanicInInlineBranchPropagates(t *testing.T) {
	defer func() {
		v := recover()
		assert.Equal(t, "inline", v)
	}()
	Pair(Sequential(), 1,
		func() int { return 1 },
		func() int { panic("inline") },
	)
}

func TestNestedPanicKeepsInnermostError(t *testing.T) {
	p := Unbounded()
	defer func() {
		pe, ok := recover().(*PanicError)
		require.True(t, ok)
		assert.Equal(t, "deep", pe.Value)
	}()
	Pair(p, 1,
		func() int {
			a, _ := Pair(p, 1, func() int { panic("deep") }, func() int { return 0 })
			return a
		},
		func() int { return 0 },
	)
}

func TestPrometheusCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := New(Config{Cutoff: 10, Registerer: reg, Namespace: "test"})
	require.NoError(t, err)
	Run(p, 1, func() {}, func() {})
	Run(p, 20, func() {}, func() {})
	Run(p, 30, func() {}, func() {})
	assert.Equal(t, 1.0, testutil.ToFloat64(p.metrics.WithLabelValues("inlined")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.metrics.WithLabelValues("spawned")))
	// a second pool on the same registry shares the counter
	q, err := New(Config{Registerer: reg, Namespace: "test"})
	require.NoError(t, err)
	assert.Same(t, p.metrics, q.metrics)
}
