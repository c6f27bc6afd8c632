// Package parallel provides parallel versions of classic sequence
// operations over slices, as well as the generic range engines they
// are built on.
//
// The engines Range, RangeReduce, and RangeChunks divide a range into
// sub-ranges that are executed as concurrent tasks on an Executor and
// recombine the results. The named operations are instantiations of
// these engines: the corresponding function from the sequential
// package is the leaf case, and an operation-specific rule combines
// the sub-results. They run on the unbounded goroutine backend and
// take the threshold as their final parameter; passing a threshold
// below one panics.
package parallel

import (
	abparallel "github.com/ahboujelben/ABParallel"
	"github.com/ahboujelben/ABParallel/internal"
)

// The named operations run on the unbounded goroutine backend. Use the
// engines directly to run on a different Executor.
var defaultExecutor abparallel.Goroutines

// protect invokes f, converting a panic into a wrapped return value so
// that a pending task can still be joined before the panic is
// re-raised.
func protect(f func()) (p interface{}) {
	defer func() {
		p = internal.WrapPanic(recover())
	}()
	f()
	return
}

// protectJoin joins a task, converting a re-raised panic into a return
// value so that the remaining tasks can be joined first. The value is
// already wrapped by the task.
func protectJoin(task *abparallel.Task) (p interface{}) {
	defer func() {
		p = recover()
	}()
	task.Join()
	return
}

/*
Range receives an executor, a range, a threshold, and a range function
f, divides the range recursively into sub-ranges, and invokes the
range function for these sub-ranges in parallel, covering the
half-open interval from low to high, including low but excluding high.

The range is specified by a low and high integer, with 0 <= low <=
high. If the range is at most threshold elements large, f is invoked
directly on the calling goroutine and no task is dispatched. Otherwise
the range is split at its midpoint, the left half is spawned on the
executor as a concurrent task, the right half is processed recursively
on the calling goroutine, and the task is joined before returning.

Range panics if high < low, or if threshold < 1.

If one or more invocations of f panic, the corresponding tasks capture
the panics, every pending task is still joined, and Range eventually
panics with the left-most recovered panic value, wrapped with its
stack trace.
*/
func Range(
	e abparallel.Executor,
	low, high, threshold int,
	f func(low, high int),
) {
	internal.CheckRange(low, high)
	internal.CheckThreshold(threshold)
	var recur func(low, high int)
	recur = func(low, high int) {
		if high-low <= threshold {
			f(low, high)
			return
		}
		mid := low + (high-low)/2
		task := e.Spawn(func() { recur(low, mid) })
		p := protect(func() { recur(mid, high) })
		task.Join()
		if p != nil {
			panic(p)
		}
	}
	recur(low, high)
}

/*
RangeReduce receives an executor, a range, a threshold, a range reducer
reduce, and a pair reducer join, divides the range recursively into
sub-ranges, and invokes the range reducer for these sub-ranges in
parallel, covering the half-open interval from low to high, including
low but excluding high. The results of the range reducer invocations
are combined by invocations of the pair reducer, with the result of
the left half as the first argument.

The range is specified by a low and high integer, with 0 <= low <=
high. If the range is at most threshold elements large, reduce is
invoked directly on the calling goroutine and no task is dispatched.
Otherwise the range is split at its midpoint, the left half is spawned
on the executor as a concurrent task, the right half is processed
recursively on the calling goroutine, and the task is joined before
the two sub-results are combined.

RangeReduce panics if high < low, or if threshold < 1.

If one or more reducer invocations panic, the corresponding tasks
capture the panics, every pending task is still joined, and
RangeReduce eventually panics with the left-most recovered panic
value, wrapped with its stack trace.
*/
func RangeReduce[T any](
	e abparallel.Executor,
	low, high, threshold int,
	reduce func(low, high int) T,
	join func(x, y T) T,
) T {
	internal.CheckRange(low, high)
	internal.CheckThreshold(threshold)
	var recur func(low, high int) T
	recur = func(low, high int) T {
		if high-low <= threshold {
			return reduce(low, high)
		}
		mid := low + (high-low)/2
		var left, right T
		task := e.Spawn(func() { left = recur(low, mid) })
		p := protect(func() { right = recur(mid, high) })
		task.Join()
		if p != nil {
			panic(p)
		}
		return join(left, right)
	}
	return recur(low, high)
}

/*
RangeChunks receives an executor, a range, a threshold, and a chunk
function f, divides the range into consecutive chunks of threshold
elements each, with the final chunk possibly shorter, and invokes the
chunk function for each of these chunks in parallel, covering the
half-open interval from low to high, including low but excluding high.

The results of the chunk function invocations are returned indexed by
chunk order, regardless of completion order. RangeChunks returns only
when all chunks have terminated, and returns nil for an empty range.

RangeChunks panics if high < low, or if threshold < 1.

If one or more invocations of f panic, the corresponding tasks capture
the panics, every task is still joined, and RangeChunks eventually
panics with the left-most recovered panic value, wrapped with its
stack trace.
*/
func RangeChunks[T any](
	e abparallel.Executor,
	low, high, threshold int,
	f func(low, high int) T,
) []T {
	internal.CheckRange(low, high)
	internal.CheckThreshold(threshold)
	if low == high {
		return nil
	}
	n := ((high - low - 1) / threshold) + 1
	results := make([]T, n)
	tasks := make([]*abparallel.Task, n)
	for k := 0; k < n; k++ {
		k := k
		chunkLow := low + k*threshold
		chunkHigh := min(chunkLow+threshold, high)
		tasks[k] = e.Spawn(func() { results[k] = f(chunkLow, chunkHigh) })
	}
	var p interface{}
	for _, task := range tasks {
		if q := protectJoin(task); p == nil {
			p = q
		}
	}
	if p != nil {
		panic(p)
	}
	return results
}
