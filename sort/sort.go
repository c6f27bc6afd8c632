/*
Package sort provides a parallel merge sort over slices, as well as
the in-place merge operation it is built on.
*/
package sort

import (
	"slices"

	"golang.org/x/exp/constraints"

	abparallel "github.com/ahboujelben/ABParallel"
	"github.com/ahboujelben/ABParallel/internal"
	"github.com/ahboujelben/ABParallel/parallel"
)

var defaultExecutor abparallel.Goroutines

// span is a sorted sub-range of the slice being sorted. The pair
// reducer only ever receives two adjacent spans, with the high bound
// of the left span equal to the low bound of the right one.
type span struct {
	low, high int
}

/*
Sort sorts a slice of any ordered type in ascending order, sorting
the sub-ranges in parallel. The sub-ranges are sorted sequentially,
and pairs of adjacent sorted sub-ranges are then merged until the
whole slice is sorted.

The threshold is the maximum size of the sub-ranges that are sorted
sequentially; Sort panics if it is below one.
*/
func Sort[E constraints.Ordered](s []E, threshold int) {
	parallel.RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) span {
		slices.Sort(s[low:high])
		return span{low, high}
	}, func(x, y span) span {
		Merge(s[x.low:y.high], x.high-x.low)
		return span{x.low, y.high}
	})
}

/*
SortFunc sorts s in ascending order as determined by the cmp
function, sorting the sub-ranges in parallel. cmp(a, b) must return a
negative number when a is less than b, a positive number when a is
greater than b, and zero when a equals b. The sub-ranges are sorted
sequentially, and pairs of adjacent sorted sub-ranges are then merged
until the whole slice is sorted.

The sort is stable: elements that compare as equal keep their
original order, for any threshold.

The threshold is the maximum size of the sub-ranges that are sorted
sequentially; SortFunc panics if it is below one.
*/
func SortFunc[E any](s []E, cmp func(a, b E) int, threshold int) {
	parallel.RangeReduce(defaultExecutor, 0, len(s), threshold, func(low, high int) span {
		slices.SortStableFunc(s[low:high], cmp)
		return span{low, high}
	}, func(x, y span) span {
		MergeFunc(s[x.low:y.high], x.high-x.low, cmp)
		return span{x.low, y.high}
	})
}

/*
IsSorted returns true if s is sorted in ascending order, checking the
sub-ranges in parallel. Slices of fewer than two elements are always
sorted.

The threshold is the maximum size of the sub-ranges that are checked
sequentially; IsSorted panics if it is below one.
*/
func IsSorted[E constraints.Ordered](s []E, threshold int) bool {
	if len(s) < 2 {
		internal.CheckThreshold(threshold)
		return true
	}
	return parallel.RangeReduce(defaultExecutor, 1, len(s), threshold, func(low, high int) bool {
		for i := low; i < high; i++ {
			if s[i] < s[i-1] {
				return false
			}
		}
		return true
	}, func(x, y bool) bool { return x && y })
}

/*
IsSortedFunc returns true if s is sorted in ascending order as
determined by the cmp function, checking the sub-ranges in parallel.
Slices of fewer than two elements are always sorted.

The threshold is the maximum size of the sub-ranges that are checked
sequentially; IsSortedFunc panics if it is below one.
*/
func IsSortedFunc[E any](s []E, cmp func(a, b E) int, threshold int) bool {
	if len(s) < 2 {
		internal.CheckThreshold(threshold)
		return true
	}
	return parallel.RangeReduce(defaultExecutor, 1, len(s), threshold, func(low, high int) bool {
		for i := low; i < high; i++ {
			if cmp(s[i], s[i-1]) < 0 {
				return false
			}
		}
		return true
	}, func(x, y bool) bool { return x && y })
}
