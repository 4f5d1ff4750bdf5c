package paraset_test

import (
	"fmt"

	"github.com/npillmayer/paraset"
	"github.com/npillmayer/paraset/jtree"
)

func ExampleSet() {
	s := paraset.NewOrdered[string]()
	s.Insert("kiwi")
	s.InsertAll("apple", "plum")
	snap := s.Snapshot()
	s.Delete("kiwi")
	fmt.Println(snap.InOrder(), s.InOrder(), s.Version())
	// Output: [apple kiwi plum] [apple plum] 3
}

func ExampleSet_Update() {
	s := paraset.NewOrdered[int]()
	s.InsertAll(1, 2, 3, 4, 5, 6)
	s.Update(func(t jtree.Tree[int]) jtree.Tree[int] {
		return t.Filter(func(k int) bool { return k%2 == 0 })
	})
	fmt.Println(s.InOrder())
	// Output: [2 4 6]
}
