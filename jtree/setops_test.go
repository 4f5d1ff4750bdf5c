package jtree

import (
	"cmp"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/paraset/forkjoin"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	for _, bal := range allSchemes {
		a := makeTree(t, bal, 1, 2, 3)
		b := makeTree(t, bal, 3, 4, 5)
		expectKeys(t, a.Union(b), 1, 2, 3, 4, 5)
		expectKeys(t, a, 1, 2, 3)
		expectKeys(t, b, 3, 4, 5)
		odd, even := makeTree(t, bal, 1, 3, 5, 7), makeTree(t, bal, 0, 2, 4, 6, 8)
		expectKeys(t, odd.Union(even), intRange(0, 9)...)
	}
}

func TestIntersectScenario(t *testing.T) {
	for _, bal := range allSchemes {
		a := makeRange(t, bal, 1, 7)
		b := makeRange(t, bal, 4, 9)
		expectKeys(t, a.Intersect(b), 4, 5, 6)
		expectKeys(t, a.Intersect(makeTree(t, bal, 100, 200)))
	}
}

func TestDifferenceScenario(t *testing.T) {
	for _, bal := range allSchemes {
		a := makeRange(t, bal, 1, 7)
		b := makeRange(t, bal, 4, 9)
		expectKeys(t, a.Difference(b), 1, 2, 3)
		expectKeys(t, b.Difference(a), 7, 8)
	}
}

func TestEmptyOperandsAreShared(t *testing.T) {
	a := makeRange(t, WeightBalanced, 0, 20)
	empty := a.Empty()
	tassert.Same(t, a.root, a.Union(empty).root)
	tassert.Same(t, a.root, empty.Union(a).root)
	tassert.Same(t, a.root, a.Difference(empty).root)
	tassert.True(t, empty.Difference(a).IsEmpty())
	tassert.True(t, a.Intersect(empty).IsEmpty())
}

func TestUnionKeepsReceiverKeys(t *testing.T) {
	type tagged struct {
		k   int
		tag string
	}
	cfg := Config[tagged]{Compare: func(a, b tagged) int { return cmp.Compare(a.k, b.k) }}
	a := Must(cfg).Build(tagged{1, "a"}, tagged{2, "a"})
	b := Must(cfg).Build(tagged{2, "b"}, tagged{3, "b"})
	u := a.Union(b)
	require.Equal(t, 3, u.Size())
	k, _ := u.Find(tagged{k: 2})
	tassert.Equal(t, "a", k.tag)
}

func TestFilterEvens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paraset")
	defer teardown()
	//
	for _, bal := range allSchemes {
		tree := makeRange(t, bal, 1, 11)
		evens := tree.Filter(func(k int) bool { return k%2 == 0 })
		expectKeys(t, evens, 2, 4, 6, 8, 10)
		expectKeys(t, tree.Filter(func(int) bool { return false }))
		all := tree.Filter(func(int) bool { return true })
		expectKeys(t, all, intRange(1, 11)...)
	}
}

func TestReduceSum(t *testing.T) {
	add := func(a, b int) int { return a + b }
	for _, bal := range allSchemes {
		tassert.Equal(t, 10, makeTree(t, bal, 1, 2, 3, 4).Reduce(add, 0))
		tassert.Equal(t, 21, makeRange(t, bal, 1, 7).Reduce(add, 0))
		tassert.Equal(t, 0, newIntTree(t, bal).Reduce(add, 0))
		tassert.Equal(t, 499500, makeRange(t, bal, 0, 1000).Reduce(add, 0))
	}
}

func TestReduceKeepsKeyOrder(t *testing.T) {
	tree := Must(Ordered[string]())
	for _, s := range []string{"d", "b", "a", "c", "e"} {
		tree = tree.Insert(s)
	}
	concat := func(a, b string) string { return a + b }
	tassert.Equal(t, "abcde", tree.Reduce(concat, ""))
}

func TestMapReduce(t *testing.T) {
	tree := Must(Ordered[string]()).Build("go", "join", "tree")
	total := MapReduce(tree, func(s string) int { return len(s) },
		func(a, b int) int { return a + b }, 0)
	tassert.Equal(t, 10, total)
	upper := MapReduce(tree, strings.ToUpper, func(a, b string) string {
		if a == "" || b == "" {
			return a + b
		}
		return a + "," + b
	}, "")
	tassert.Equal(t, "GO,JOIN,TREE", upper)
}

func TestOperationsFork(t *testing.T) {
	pool, err := forkjoin.New(forkjoin.Config{MaxTasks: 8, Cutoff: 2})
	require.NoError(t, err)
	cfg := Config[int]{Compare: cmp.Compare[int], Pool: pool}
	a := Must(cfg).Build(intRange(0, 2000)...)
	b := Must(cfg).Build(intRange(1000, 3000)...)
	before := pool.Stats()
	u := a.Union(b)
	after := pool.Stats()
	require.NoError(t, u.Check())
	tassert.Equal(t, 3000, u.Size())
	tassert.Greater(t, after.Spawned+after.Inlined, before.Spawned+before.Inlined)
}

func TestSequentialPoolMatchesParallel(t *testing.T) {
	keysA := []int{9, 3, 27, 81, 1, 5, 40, 41, 42}
	keysB := []int{3, 4, 5, 6, 41, 100}
	for _, bal := range allSchemes {
		seq := Must(Config[int]{Compare: cmp.Compare[int], Balance: bal, Pool: forkjoin.Sequential()})
		par := Must(Config[int]{Compare: cmp.Compare[int], Balance: bal, Pool: forkjoin.Unbounded()})
		sa, sb := seq.Build(keysA...), seq.Build(keysB...)
		pa, pb := par.Build(keysA...), par.Build(keysB...)
		tassert.Equal(t, sa.Union(sb).InOrder(), pa.Union(pb).InOrder(), bal.String())
		tassert.Equal(t, sa.Intersect(sb).InOrder(), pa.Intersect(pb).InOrder(), bal.String())
		tassert.Equal(t, sa.Difference(sb).InOrder(), pa.Difference(pb).InOrder(), bal.String())
	}
}

func TestFilterCallsPredicateOncePerKey(t *testing.T) {
	tree := makeRange(t, AVL, 0, 500)
	var calls atomic.Int64
	_ = tree.Filter(func(k int) bool {
		calls.Add(1)
		return k%3 == 0
	})
	tassert.EqualValues(t, 500, calls.Load())
}

func TestFilterPanicReachesCaller(t *testing.T) {
	tree := makeRange(t, WeightBalanced, 0, 300)
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic from predicate to propagate")
		tassert.Contains(t, fmt.Sprint(r), "bad key")
	}()
	tree.Filter(func(k int) bool {
		if k == 17 {
			panic("bad key")
		}
		return true
	})
}
