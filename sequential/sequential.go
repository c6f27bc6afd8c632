// Package sequential provides sequential implementations of the
// functions provided by the parallel package. The parallel operations
// use them as their leaf cases, and they double as a baseline for
// testing and debugging.
package sequential

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	abparallel "github.com/ahboujelben/ABParallel"
)

// Transform applies f to the elements of src and stores the results in
// the corresponding positions of dst. It transforms min(len(dst),
// len(src)) elements and returns that number, following the length
// convention of the builtin copy.
func Transform[S, D any](dst []D, src []S, f func(S) D) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = f(src[i])
	}
	return n
}

// ForEach invokes f with a pointer to each element of s, in order.
func ForEach[E any](s []E, f func(*E)) {
	for i := range s {
		f(&s[i])
	}
}

// Generate sets each element of s to the result of a call to f, in
// order.
func Generate[E any](s []E, f func() E) {
	for i := range s {
		s[i] = f()
	}
}

// Fill sets each element of s to v.
func Fill[E any](s []E, v E) {
	for i := range s {
		s[i] = v
	}
}

// Copy copies elements from src to dst and returns the number of
// elements copied, which is the minimum of len(dst) and len(src).
func Copy[E any](dst, src []E) int {
	return copy(dst, src)
}

// Replace replaces all elements of s equal to old with new.
func Replace[E comparable](s []E, old, new E) {
	for i := range s {
		if s[i] == old {
			s[i] = new
		}
	}
}

// ReplaceFunc replaces all elements of s for which f returns true with
// new.
func ReplaceFunc[E any](s []E, f func(E) bool, new E) {
	for i := range s {
		if f(s[i]) {
			s[i] = new
		}
	}
}

// Sum returns the sum of the elements of s, added from left to right.
// The sum of an empty slice is the zero value of E.
func Sum[E abparallel.Addable](s []E) (sum E) {
	for _, v := range s {
		sum += v
	}
	return
}

// SumFunc applies f to each element of s and returns the sum of the
// results, added from left to right.
func SumFunc[E any, A abparallel.Addable](s []E, f func(E) A) (sum A) {
	for _, v := range s {
		sum += f(v)
	}
	return
}

// Count returns the number of elements of s equal to v.
func Count[E comparable](s []E, v E) (count int) {
	for i := range s {
		if s[i] == v {
			count++
		}
	}
	return
}

// CountFunc returns the number of elements of s for which f returns
// true.
func CountFunc[E any](s []E, f func(E) bool) (count int) {
	for i := range s {
		if f(s[i]) {
			count++
		}
	}
	return
}

// Index returns the index of the first occurrence of v in s, or -1 if
// v is not present.
func Index[E comparable](s []E, v E) int {
	return slices.Index(s, v)
}

// IndexFunc returns the index of the first element of s for which f
// returns true, or -1 if there is none.
func IndexFunc[E any](s []E, f func(E) bool) int {
	return slices.IndexFunc(s, f)
}

// IndexFuncNot returns the index of the first element of s for which f
// returns false, or -1 if there is none.
func IndexFuncNot[E any](s []E, f func(E) bool) int {
	for i := range s {
		if !f(s[i]) {
			return i
		}
	}
	return -1
}

// AllOf reports whether f returns true for every element of s. It is
// true for an empty slice.
func AllOf[E any](s []E, f func(E) bool) bool {
	return IndexFuncNot(s, f) < 0
}

// AnyOf reports whether f returns true for at least one element of s.
// It is false for an empty slice.
func AnyOf[E any](s []E, f func(E) bool) bool {
	return IndexFunc(s, f) >= 0
}

// NoneOf reports whether f returns false for every element of s. It is
// true for an empty slice.
func NoneOf[E any](s []E, f func(E) bool) bool {
	return IndexFunc(s, f) < 0
}

// MaxIndex returns the index of the first maximal element of s, or -1
// if s is empty.
func MaxIndex[E constraints.Ordered](s []E) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[best] {
			best = i
		}
	}
	return best
}

// MaxIndexFunc returns the index of the first maximal element of s
// according to cmp, or -1 if s is empty.
func MaxIndexFunc[E any](s []E, cmp func(a, b E) int) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[best]) > 0 {
			best = i
		}
	}
	return best
}

// MinIndex returns the index of the first minimal element of s, or -1
// if s is empty.
func MinIndex[E constraints.Ordered](s []E) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if s[i] < s[best] {
			best = i
		}
	}
	return best
}

// MinIndexFunc returns the index of the first minimal element of s
// according to cmp, or -1 if s is empty.
func MinIndexFunc[E any](s []E, cmp func(a, b E) int) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[best]) < 0 {
			best = i
		}
	}
	return best
}

// Equal reports whether a and b have the same length and all
// corresponding elements are equal.
func Equal[E comparable](a, b []E) bool {
	return slices.Equal(a, b)
}

// EqualFunc reports whether a and b have the same length and eq
// returns true for every pair of corresponding elements.
func EqualFunc[E1, E2 any](a []E1, b []E2, eq func(E1, E2) bool) bool {
	return slices.EqualFunc(a, b, eq)
}

// CopyIf copies the elements of src for which f returns true into dst,
// preserving their relative order, and returns the number of elements
// copied. It requires len(dst) >= len(src) and panics otherwise; the
// contents of dst beyond the returned count are unspecified.
func CopyIf[E any](dst, src []E, f func(E) bool) int {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("destination too short: %v < %v", len(dst), len(src)))
	}
	count := 0
	for i := range src {
		if f(src[i]) {
			dst[count] = src[i]
			count++
		}
	}
	return count
}

// Remove removes the elements of s equal to v, preserving the order of
// the remaining elements, and returns the new length. The contents of
// s beyond the returned length are unspecified.
func Remove[E comparable](s []E, v E) int {
	count := 0
	for i := range s {
		if s[i] != v {
			s[count] = s[i]
			count++
		}
	}
	return count
}

// RemoveFunc removes the elements of s for which f returns true,
// preserving the order of the remaining elements, and returns the new
// length. The contents of s beyond the returned length are
// unspecified.
func RemoveFunc[E any](s []E, f func(E) bool) int {
	count := 0
	for i := range s {
		if !f(s[i]) {
			s[count] = s[i]
			count++
		}
	}
	return count
}
