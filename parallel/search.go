package parallel

import (
	"github.com/ahboujelben/ABParallel/sequential"
)

// leftmost combines two find results, with -1 standing for no match.
// A match in the left half precedes any match in the right half.
func leftmost(x, y int) int {
	if x >= 0 {
		return x
	}
	return y
}

/*
Index returns the index of the first occurrence of v in s, or -1 if v
is not present, searching the sub-ranges in parallel.

Every sub-range is searched to completion, but the returned index is
always the left-most match, as if the slice had been scanned from
front to back.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; Index panics if it is below one.
*/
func Index[E comparable](s []E, v E, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.Index(s[low:high], v); i >= 0 {
			return low + i
		}
		return -1
	}, leftmost)
}

/*
IndexFunc returns the index of the first element of s for which f
returns true, or -1 if there is no such element, searching the
sub-ranges in parallel.

Every sub-range is searched to completion, but the returned index is
always the left-most match, as if the slice had been scanned from
front to back.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; IndexFunc panics if it is below one.
*/
func IndexFunc[E any](s []E, f func(E) bool, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.IndexFunc(s[low:high], f); i >= 0 {
			return low + i
		}
		return -1
	}, leftmost)
}

/*
IndexFuncNot returns the index of the first element of s for which f
returns false, or -1 if there is no such element, searching the
sub-ranges in parallel.

Every sub-range is searched to completion, but the returned index is
always the left-most match, as if the slice had been scanned from
front to back.

The threshold is the maximum size of the sub-ranges that are searched
sequentially; IndexFuncNot panics if it is below one.
*/
func IndexFuncNot[E any](s []E, f func(E) bool, threshold int) int {
	return RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		if i := sequential.IndexFuncNot(s[low:high], f); i >= 0 {
			return low + i
		}
		return -1
	}, leftmost)
}

/*
AllOf returns true if f returns true for every element of s, testing
the sub-ranges in parallel. AllOf returns true for an empty slice.

The threshold is the maximum size of the sub-ranges that are tested
sequentially; AllOf panics if it is below one.
*/
func AllOf[E any](s []E, f func(E) bool, threshold int) bool {
	return IndexFuncNot(s, f, threshold) < 0
}

/*
AnyOf returns true if f returns true for at least one element of s,
testing the sub-ranges in parallel. AnyOf returns false for an empty
slice.

The threshold is the maximum size of the sub-ranges that are tested
sequentially; AnyOf panics if it is below one.
*/
func AnyOf[E any](s []E, f func(E) bool, threshold int) bool {
	return IndexFunc(s, f, threshold) >= 0
}

/*
NoneOf returns true if f returns false for every element of s,
testing the sub-ranges in parallel. NoneOf returns true for an empty
slice.

The threshold is the maximum size of the sub-ranges that are tested
sequentially; NoneOf panics if it is below one.
*/
func NoneOf[E any](s []E, f func(E) bool, threshold int) bool {
	return !AnyOf(s, f, threshold)
}
