package kind_test

import (
	"fmt"

	"github.com/hasbyte1/go-objutil/kind"
)

func ExampleOf() {
	fmt.Println(kind.Of(nil))
	fmt.Println(kind.Of(kind.Undef))
	fmt.Println(kind.Of(3.14))
	fmt.Println(kind.Of([]string{"a"}))
	fmt.Println(kind.Of(struct{}{}))
	// Output:
	// Null
	// Undefined
	// Number
	// Array
	// Object
}

func ExampleIsBoolean() {
	b := true
	fmt.Println(kind.IsBoolean(b), kind.IsBoolean(&b))
	// Output: true false
}
