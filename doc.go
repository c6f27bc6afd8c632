// Package abparallel provides functions and data structures for expressing
// parallel versions of classic sequence algorithms. While Go is primarily
// designed for concurrent programming, it is also usable to some extent for
// parallel programming, and this library provides convenience functionality
// to turn otherwise sequential algorithms into parallel algorithms, with the
// goal to improve performance.
//
// The algorithms divide an index range into sub-ranges that are executed as
// concurrent tasks and recombined under operation-specific rules: order for
// searching, addition for reductions, stability for merging. How finely a
// range is divided is controlled by a per-call threshold, the maximum
// sub-range size that is still processed sequentially.
//
// ABParallel provides the following subpackages:
//
// parallel provides parallel versions of classic sequence operations over
// slices (transform, reduction, search, filtering), as well as the generic
// range engines they are built on.
//
// sequential provides sequential implementations of all functions from the
// parallel package, for testing and debugging purposes.
//
// sort provides parallel sorting and merging.
//
// The root package provides the execution backends that spawn and join
// tasks, and types and helpers shared by the subpackages.
package abparallel
