package parallel

import (
	"github.com/ahboujelben/ABParallel/sequential"
)

/*
Equal returns true if a and b have the same length and all
corresponding elements are equal, comparing the sub-ranges in
parallel. Two empty slices are equal.

All sub-ranges are compared to completion, even when one of them has
already found a difference.

The threshold is the maximum size of the sub-ranges that are compared
sequentially; Equal panics if it is below one.
*/
func Equal[E comparable](a, b []E, threshold int) bool {
	if len(a) != len(b) {
		return false
	}
	return RangeReduce(defaultExecutor, 0, len(a), threshold, func(low, high int) bool {
		return sequential.Equal(a[low:high], b[low:high])
	}, func(x, y bool) bool { return x && y })
}

/*
EqualFunc returns true if a and b have the same length and eq returns
true for all corresponding elements, comparing the sub-ranges in
parallel. Two empty slices are equal.

All sub-ranges are compared to completion, even when one of them has
already found a difference.

The threshold is the maximum size of the sub-ranges that are compared
sequentially; EqualFunc panics if it is below one.
*/
func EqualFunc[E1, E2 any](a []E1, b []E2, eq func(E1, E2) bool, threshold int) bool {
	if len(a) != len(b) {
		return false
	}
	return RangeReduce(defaultExecutor, 0, len(a), threshold, func(low, high int) bool {
		return sequential.EqualFunc(a[low:high], b[low:high], eq)
	}, func(x, y bool) bool { return x && y })
}
