package abparallel

import (
	"fmt"
	"runtime"
)

type (
	// A Thunk is a function that neither receives nor returns any
	// parameters.
	Thunk func()
)

// Addable is a type constraint satisfied by every type that supports the
// + operator. Note that addition is not associative for floating-point
// and complex types.
type Addable interface {
	~uint | ~int | ~uintptr |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~string
}

/*
DefaultThreshold suggests a threshold for the functions in the parallel
and sort packages.

It takes the size n of the range that is going to be processed, with
n >= 0, and returns a threshold that divides the range into roughly
twice as many sub-ranges as there are logical CPUs (as determined by
runtime.GOMAXPROCS(0)). This is a reasonable choice when the work per
element is roughly uniform. Use a smaller threshold if you expect load
imbalance, or a larger one if the work per element is too small to
compensate for the scheduling overhead.

DefaultThreshold panics if n < 0.
*/
func DefaultThreshold(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("invalid size: %v", n))
	}
	if n == 0 {
		return 1
	}
	return ((n - 1) / (2 * runtime.GOMAXPROCS(0))) + 1
}
