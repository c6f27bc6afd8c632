package sort

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ahboujelben/ABParallel/internal"
)

/*
Merge merges the two adjacent sorted sub-slices s[:mid] and s[mid:]
in place, so that s as a whole becomes sorted in ascending order.
Both halves are copied to temporary buffers first, so Merge allocates
len(s) elements of additional memory.

The merge is stable: on ties the element from s[:mid] comes first.

Merge panics if mid < 0 or mid > len(s).
*/
func Merge[E constraints.Ordered](s []E, mid int) {
	internal.CheckRange(mid, len(s))
	if mid == 0 || mid == len(s) {
		return
	}
	left := slices.Clone(s[:mid])
	right := slices.Clone(s[mid:])
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	// The rest of the right buffer is already in its final place.
	copy(s[k:], left[i:])
}

/*
MergeFunc merges the two adjacent sub-slices s[:mid] and s[mid:],
both sorted as determined by the cmp function, in place, so that s as
a whole becomes sorted. cmp(a, b) must return a negative number when
a is less than b, a positive number when a is greater than b, and
zero when a equals b. Both halves are copied to temporary buffers
first, so MergeFunc allocates len(s) elements of additional memory.

The merge is stable: on ties the element from s[:mid] comes first.

MergeFunc panics if mid < 0 or mid > len(s).
*/
func MergeFunc[E any](s []E, mid int, cmp func(a, b E) int) {
	internal.CheckRange(mid, len(s))
	if mid == 0 || mid == len(s) {
		return
	}
	left := slices.Clone(s[:mid])
	right := slices.Clone(s[mid:])
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	// The rest of the right buffer is already in its final place.
	copy(s[k:], left[i:])
}
