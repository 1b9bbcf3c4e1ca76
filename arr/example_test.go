package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-objutil/arr"
)

func ExampleToArray() {
	args := func(xs ...int) []int { return arr.ToArray(xs...) }(1, 2, 3)
	fmt.Println(args)
	// Output: [1 2 3]
}

func ExampleEach() {
	arr.Each([]string{"a", "b"}, func(v string, i int, _ []string) {
		fmt.Println(i, v)
	})
	// Output:
	// 0 a
	// 1 b
}

func ExampleMap() {
	doubled := arr.Map([]int{1, 2, 3}, func(n, _ int) int { return n * 2 })
	fmt.Println(doubled)
	// Output: [2 4 6]
}
