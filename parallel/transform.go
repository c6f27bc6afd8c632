package parallel

import (
	"github.com/ahboujelben/ABParallel/sequential"
)

/*
Transform applies f to each element of src and stores the result at
the corresponding position of dst, processing the elements in
parallel. It transforms min(len(dst), len(src)) elements and returns
that number.

The threshold is the maximum size of the sub-ranges that are
transformed sequentially; Transform panics if it is below one.
*/
func Transform[S, D any](dst []D, src []S, f func(S) D, threshold int) int {
	n := min(len(dst), len(src))
	Range(defaultExecutor, 0, n, threshold, func(low, high int) {
		sequential.Transform(dst[low:high], src[low:high], f)
	})
	return n
}

/*
ForEach invokes f with a pointer to each element of s in parallel, so
that f can inspect or update the element in place.

The threshold is the maximum size of the sub-ranges that are
processed sequentially; ForEach panics if it is below one.
*/
func ForEach[E any](s []E, f func(*E), threshold int) {
	Range(defaultExecutor, 0, len(s), threshold, func(low, high int) {
		sequential.ForEach(s[low:high], f)
	})
}

/*
Generate sets each element of s to the result of an invocation of f,
processing the elements in parallel. The invocations are concurrent,
so f must be safe for concurrent use.

The threshold is the maximum size of the sub-ranges that are
generated sequentially; Generate panics if it is below one.
*/
func Generate[E any](s []E, f func() E, threshold int) {
	Range(defaultExecutor, 0, len(s), threshold, func(low, high int) {
		sequential.Generate(s[low:high], f)
	})
}

/*
Fill sets each element of s to v, processing the elements in
parallel.

The threshold is the maximum size of the sub-ranges that are filled
sequentially; Fill panics if it is below one.
*/
func Fill[E any](s []E, v E, threshold int) {
	Range(defaultExecutor, 0, len(s), threshold, func(low, high int) {
		sequential.Fill(s[low:high], v)
	})
}

/*
Copy copies elements from src into dst in parallel, and returns the
number of elements copied, which is min(len(dst), len(src)).

The threshold is the maximum size of the sub-ranges that are copied
sequentially; Copy panics if it is below one.
*/
func Copy[E any](dst, src []E, threshold int) int {
	n := min(len(dst), len(src))
	Range(defaultExecutor, 0, n, threshold, func(low, high int) {
		sequential.Copy(dst[low:high], src[low:high])
	})
	return n
}

/*
Replace replaces all occurrences of old in s with new, processing the
elements in parallel.

The threshold is the maximum size of the sub-ranges that are
processed sequentially; Replace panics if it is below one.
*/
func Replace[E comparable](s []E, old, new E, threshold int) {
	Range(defaultExecutor, 0, len(s), threshold, func(low, high int) {
		sequential.Replace(s[low:high], old, new)
	})
}

/*
ReplaceFunc replaces all elements of s for which f returns true with
new, processing the elements in parallel.

The threshold is the maximum size of the sub-ranges that are
processed sequentially; ReplaceFunc panics if it is below one.
*/
func ReplaceFunc[E any](s []E, f func(E) bool, new E, threshold int) {
	Range(defaultExecutor, 0, len(s), threshold, func(low, high int) {
		sequential.ReplaceFunc(s[low:high], f, new)
	})
}
