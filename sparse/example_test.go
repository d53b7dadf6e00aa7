package sparse_test

import (
	"fmt"

	"github.com/hupe1980/containers/sparse"
)

func ExampleVec() {
	data := sparse.New[int]()
	id1 := data.Insert(5)
	id2 := data.Insert(6)
	id3 := data.Insert(7)

	removed, _ := data.Remove(id2)
	fmt.Println(removed)

	v1, _ := data.Get(id1)
	v3, _ := data.Get(id3)
	fmt.Println(v1, v3)
	fmt.Println(data.Data().Items())
	fmt.Println(data.Contains(id2))

	// The freed index is reused first.
	fmt.Println(data.Insert(8) == id2)

	// Output:
	// 6
	// 5 7
	// [5 7]
	// false
	// true
}

func ExampleFixedVec() {
	data := sparse.NewFixed[string](2)
	data.Insert("a")
	data.Insert("b")

	if _, err := data.TryInsert("c"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// capacity exceeded: fixed capacity 2
}

func ExampleVecOf_Items() {
	data := sparse.New[string]()
	data.Insert("zero")
	data.Insert("one")
	data.Insert("two")
	data.Remove(0)

	for id, name := range data.Items() {
		fmt.Println(id, name)
	}

	// Output:
	// 2 two
	// 1 one
}
