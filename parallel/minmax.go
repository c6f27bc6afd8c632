package parallel

import (
	"golang.org/x/exp/constraints"

	"github.com/ahboujelben/ABParallel/sequential"
)

/*
MaxIndex returns the index of the first occurrence of the maximum
element of s, or -1 if s is empty, searching the sub-ranges in
parallel.

When the maximum occurs more than once, the smallest of its indices
is returned, for any threshold.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; MaxIndex panics if it is below one.
*/
func MaxIndex[E constraints.Ordered](s []E, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.MaxIndex(s[low:high]); i >= 0 {
			return low + i
		}
		return -1
	}, func(left, right int) int {
		if s[left] < s[right] {
			return right
		}
		return left
	})
}

/*
MaxIndexFunc returns the index of the first occurrence of the maximum
element of s according to the comparison function cmp, or -1 if s is
empty, searching the sub-ranges in parallel. cmp(a, b) must return a
negative number when a is less than b, a positive number when a is
greater than b, and zero when a equals b.

When the maximum occurs more than once, the smallest of its indices
is returned, for any threshold.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; MaxIndexFunc panics if it is below one.
*/
func MaxIndexFunc[E any](s []E, cmp func(a, b E) int, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.MaxIndexFunc(s[low:high], cmp); i >= 0 {
			return low + i
		}
		return -1
	}, func(left, right int) int {
		if cmp(s[left], s[right]) < 0 {
			return right
		}
		return left
	})
}

/*
MinIndex returns the index of the first occurrence of the minimum
element of s, or -1 if s is empty, searching the sub-ranges in
parallel.

When the minimum occurs more than once, the smallest of its indices
is returned, for any threshold.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; MinIndex panics if it is below one.
*/
func MinIndex[E constraints.Ordered](s []E, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.MinIndex(s[low:high]); i >= 0 {
			return low + i
		}
		return -1
	}, func(left, right int) int {
		if s[left] <= s[right] {
			return left
		}
		return right
	})
}

/*
MinIndexFunc returns the index of an occurrence of the minimum
element of s according to the comparison function cmp, or -1 if s is
empty, searching the sub-ranges in parallel. cmp(a, b) must return a
negative number when a is less than b, a positive number when a is
greater than b, and zero when a equals b.

When the minimum occurs more than once, the returned index depends on
the threshold: within a sub-range the first occurrence wins, but
across two sub-ranges the right one does. Use MinIndex, or negate cmp
and use MaxIndexFunc, when the smallest index is required.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; MinIndexFunc panics if it is below one.
*/
func MinIndexFunc[E any](s []E, cmp func(a, b E) int, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.MinIndexFunc(s[low:high], cmp); i >= 0 {
			return low + i
		}
		return -1
	}, func(left, right int) int {
		if cmp(s[left], s[right]) < 0 {
			return left
		}
		return right
	})
}
