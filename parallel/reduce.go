package parallel

import (
	abparallel "github.com/ahboujelben/ABParallel"
	"github.com/ahboujelben/ABParallel/sequential"
)

/*
Sum returns the sum of the elements of s, computed in parallel. The
sum of an empty slice is the zero value of the element type.

The sub-ranges are summed independently and the partial sums are then
added together, so for floating-point and complex element types the
result may differ from a sequential left-to-right summation.

The threshold is the maximum size of the sub-ranges that are summed
sequentially; Sum panics if it is below one.
*/
func Sum[E abparallel.Addable](s []E, threshold int) E {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) E {
		return sequential.Sum(s[low:high])
	}, func(x, y E) E { return x + y })
}

/*
SumFunc returns the sum of f applied to each element of s, computed
in parallel. The sum of an empty slice is the zero value of the
result type.

The sub-ranges are summed independently and the partial sums are then
added together, so for floating-point and complex result types the
result may differ from a sequential left-to-right summation.

The threshold is the maximum size of the sub-ranges that are summed
sequentially; SumFunc panics if it is below one.
*/
func SumFunc[E any, A abparallel.Addable](s []E, f func(E) A, threshold int) A {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) A {
		return sequential.SumFunc(s[low:high], f)
	}, func(x, y A) A { return x + y })
}

/*
Count returns the number of elements of s that are equal to v,
counting the sub-ranges in parallel.

The threshold is the maximum size of the sub-ranges that are counted
sequentially; Count panics if it is below one.
*/
func Count[E comparable](s []E, v E, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		return sequential.Count(s[low:high], v)
	}, func(x, y int) int { return x + y })
}

/*
CountFunc returns the number of elements of s for which f returns
true, counting the sub-ranges in parallel.

The threshold is the maximum size of the sub-ranges that are counted
sequentially; CountFunc panics if it is below one.
*/
func CountFunc[E any](s []E, f func(E) bool, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		return sequential.CountFunc(s[low:high], f)
	}, func(x, y int) int { return x + y })
}
