package parallel

import (
	"fmt"

	"github.com/ahboujelben/ABParallel/sequential"
)

// stitch moves the compacted chunks of s next to each other and
// returns the total number of retained elements. counts holds the
// number of retained elements per chunk of threshold elements each;
// the retained elements of chunk k start at position k*threshold.
// The chunks are processed in order, so the destination of a copy
// never lies behind its source.
func stitch[E any](s []E, counts []int, threshold int) int {
	if len(counts) == 0 {
		return 0
	}
	end := counts[0]
	for k := 1; k < len(counts); k++ {
		low := k * threshold
		if low != end {
			copy(s[end:], s[low:low+counts[k]])
		}
		end += counts[k]
	}
	return end
}

/*
CopyIf copies the elements of src for which f returns true to dst,
keeping their relative order, and returns the number of elements
copied. dst must be at least as long as src; CopyIf panics otherwise.

The elements are tested and copied one chunk at a time in parallel,
with each chunk compacted at its own position of dst, and the
retained chunks are then moved next to each other sequentially. The
elements of dst beyond the returned count have unspecified values
afterwards.

The threshold is the chunk size; CopyIf panics if it is below one.
*/
func CopyIf[E any](dst, src []E, f func(E) bool, threshold int) int {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("destination too short: %v < %v", len(dst), len(src)))
	}
	counts := RangeChunks(defaultExecutor, 0, len(src), threshold, func(low, high int) int {
		return sequential.CopyIf(dst[low:high], src[low:high], f)
	})
	return stitch(dst, counts, threshold)
}

/*
Remove removes all occurrences of v from s, keeping the relative
order of the remaining elements, and returns the number of remaining
elements. The elements of s beyond the returned count have
unspecified values afterwards.

The elements are tested one chunk at a time in parallel, with each
chunk compacted in place, and the compacted chunks are then moved
next to each other sequentially.

The threshold is the chunk size; Remove panics if it is below one.
*/
func Remove[E comparable](s []E, v E, threshold int) int {
	counts := RangeChunks(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		return sequential.Remove(s[low:high], v)
	})
	return stitch(s, counts, threshold)
}

/*
RemoveFunc removes all elements of s for which f returns true,
keeping the relative order of the remaining elements, and returns the
number of remaining elements. The elements of s beyond the returned
count have unspecified values afterwards.

The elements are tested one chunk at a time in parallel, with each
chunk compacted in place, and the compacted chunks are then moved
next to each other sequentially.

The threshold is the chunk size; RemoveFunc panics if it is below
one.
*/
func RemoveFunc[E any](s []E, f func(E) bool, threshold int) int {
	counts := RangeChunks(defaultExecutor, 0, len(s), threshold, func(low, high int) int {
		return sequential.RemoveFunc(s[low:high], f)
	})
	return stitch(s, counts, threshold)
}
