package pullstreams

import (
	"fmt"
	"strconv"
)

func Example() {
	// construct a stream from a slice
	ints := Produce([]int{1, 2, 3, 4, 5})

	// map elements by doubling them
	// since we only need the elements themselves, we can use FuncMapper
	ints = Map(ints, FuncMapper(func(elem int) int {
		return elem * 2
	}))

	// map elements by converting them to strings
	intStrs := Map(ints, FuncMapper(strconv.Itoa))

	// collect the strings into a slice
	strs := ReduceSlice(intStrs)

	fmt.Printf("%+v\n", strs)
	// Output: [2 4 6 8 10]
}

func Example_sum() {
	// sum the even integers below 10
	evens := Filter(ProduceRange(0, 10), FuncPredicate(func(elem int) bool {
		return elem%2 == 0
	}))

	fmt.Println(Sum(evens))
	// Output: 20
}
