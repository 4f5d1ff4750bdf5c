package jtree_test

import (
	"fmt"

	"github.com/npillmayer/paraset/jtree"
)

func ExampleTree_Split() {
	tree := jtree.Must(jtree.Ordered[int]()).Build(1, 3, 5, 7)
	less, found, greater := tree.Split(4)
	fmt.Println(less.InOrder(), found, greater.InOrder())
	// Output: [1 3] false [5 7]
}

func ExampleTree_Union() {
	base := jtree.Must(jtree.Ordered[int]())
	a := base.Build(1, 2, 3)
	b := base.Build(3, 4, 5)
	fmt.Println(a.Union(b).InOrder())
	fmt.Println(a.InOrder(), b.InOrder())
	// Output:
	// [1 2 3 4 5]
	// [1 2 3] [3 4 5]
}

func ExampleTree_Reduce() {
	tree := jtree.Must(jtree.Ordered[int]()).Build(1, 2, 3, 4)
	evens := tree.Filter(func(k int) bool { return k%2 == 0 })
	fmt.Println(evens.InOrder(), tree.Reduce(func(a, b int) int { return a + b }, 0))
	// Output: [2 4] 10
}

func ExampleJoinMid() {
	base := jtree.Must(jtree.Config[string]{
		Compare: func(a, b string) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
		Balance: jtree.AVL,
	})
	t := jtree.JoinMid(jtree.Node(base.Singleton("apple"), "kiwi", base.Singleton("plum")))
	e := t.Expose()
	fmt.Println(e.Left.InOrder(), e.Key, e.Right.InOrder())
	// Output: [apple] kiwi [plum]
}
