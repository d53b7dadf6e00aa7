package recycling_test

import (
	"fmt"

	"github.com/hupe1980/containers/recycling"
)

func ExampleVec() {
	data := recycling.NewVec[recycling.Slice[int]]()
	data.Push(func() recycling.Slice[int] { return recycling.Slice[int]{1, 2, 3} }, nil)
	data.Push(func() recycling.Slice[int] { return recycling.Slice[int]{1, 2, 3} }, nil)
	fmt.Println(data.Len())

	data.Pop()
	fmt.Println(data.Len(), data.Pooled())

	el := data.Push(func() recycling.Slice[int] { return recycling.Slice[int]{1, 2, 3, 4, 5, 6} }, nil)
	fmt.Println(len(*el), cap(*el) >= 3)

	// Output:
	// 2
	// 1 1
	// 0 true
}

func ExampleVec_Push() {
	data := recycling.NewVec[recycling.Int]()
	data.PushDefault()
	data.Pop()

	ctor := func() recycling.Int { return 1 }
	init := func(v *recycling.Int) { *v = 2 }
	data.Push(ctor, init) // recycled: init applies
	data.Push(ctor, init) // constructed: ctor only
	fmt.Println(data)

	// Output:
	// [2 1]
}

func ExampleMap_Entry() {
	styles := recycling.NewMap[string, recycling.Slice[string]]()
	for _, c := range [][2]string{
		{"Mozart", "Classical"},
		{"Jimi Hendrix", "Rock"},
		{"Eric Clapton", "Rock"},
	} {
		s := styles.Entry(c[1]).OrInsertDefault()
		*s = append(*s, c[0])
	}

	fmt.Println(*styles.At("Classical"))
	fmt.Println(*styles.At("Rock"))

	// Output:
	// [Mozart]
	// [Jimi Hendrix Eric Clapton]
}

func ExampleMap_Insert() {
	data := recycling.NewMap[int, recycling.Slice[int]]()
	data.InsertDefault(0)
	data.Remove(0)

	ctor := func() recycling.Slice[int] { return recycling.Slice[int]{0} }
	init := func(s *recycling.Slice[int]) { *s = append(*s, 1) }

	fmt.Println(*data.Insert(1, ctor, init))  // recycled
	fmt.Println(*data.Insert(1, ctor, init))  // present: cleared, then init
	fmt.Println(*data.Insert(10, ctor, init)) // constructed

	// Output:
	// [1]
	// [1]
	// [0]
}
