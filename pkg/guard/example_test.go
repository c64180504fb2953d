package guard_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/guard/pkg/guard"
)

func ExampleNotNilRef() {
	fmt.Println(guard.NotNilRef(nil, "config"))
	fmt.Println(guard.NotNilRef("x", "config"))
	// Output:
	// guard: config: argument is missing or empty
	// <nil>
}

func ExampleNotEmptySlice() {
	fmt.Println(guard.NotEmptySlice([]int{}, "items"))
	fmt.Println(guard.NotEmptySlice([]int{1, 2}, "items"))
	// Output:
	// guard: items: argument is missing or empty
	// <nil>
}

func ExamplePositive() {
	err := guard.Positive(0, "count")
	fmt.Println(errors.Is(err, guard.ErrOutOfRange), guard.ArgumentName(err))
	fmt.Println(guard.Positive(5, "count"))
	// Output:
	// true count
	// <nil>
}
