package sequential_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/ahboujelben/ABParallel/sequential"
)

func TestTransform(t *testing.T) {
	src := []int{1, 2, 3, 4}
	dst := make([]string, 6)
	n := sequential.Transform(dst, src, func(x int) string {
		return strings.Repeat("x", x)
	})
	if n != 4 {
		t.Errorf("got %v, want 4", n)
	}
	if want := []string{"x", "xx", "xxx", "xxxx", "", ""}; !slices.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}

	short := make([]string, 2)
	if n := sequential.Transform(short, src, func(x int) string { return "" }); n != 2 {
		t.Errorf("got %v, want 2", n)
	}
}

func TestForEach(t *testing.T) {
	s := []int{1, 2, 3}
	sequential.ForEach(s, func(p *int) { *p *= 10 })
	if want := []int{10, 20, 30}; !slices.Equal(s, want) {
		t.Errorf("got %v, want %v", s, want)
	}
}

func TestGenerate(t *testing.T) {
	s := make([]int, 5)
	next := 0
	sequential.Generate(s, func() int {
		next++
		return next
	})
	if want := []int{1, 2, 3, 4, 5}; !slices.Equal(s, want) {
		t.Errorf("got %v, want %v", s, want)
	}
}

func TestFill(t *testing.T) {
	s := make([]int, 4)
	sequential.Fill(s, 7)
	if want := []int{7, 7, 7, 7}; !slices.Equal(s, want) {
		t.Errorf("got %v, want %v", s, want)
	}
}

func TestCopy(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 5)
	if n := sequential.Copy(dst, src); n != 3 {
		t.Errorf("got %v, want 3", n)
	}
	if want := []int{1, 2, 3, 0, 0}; !slices.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func TestReplace(t *testing.T) {
	s := []int{5, 3, 8, 3, 1, 9, 3}
	sequential.Replace(s, 3, 0)
	if want := []int{5, 0, 8, 0, 1, 9, 0}; !slices.Equal(s, want) {
		t.Errorf("got %v, want %v", s, want)
	}

	sequential.ReplaceFunc(s, func(x int) bool { return x > 5 }, 6)
	if want := []int{5, 0, 6, 0, 1, 6, 0}; !slices.Equal(s, want) {
		t.Errorf("got %v, want %v", s, want)
	}
}

func TestSum(t *testing.T) {
	if sum := sequential.Sum([]int{5, 3, 8, 3, 1, 9, 3}); sum != 32 {
		t.Errorf("got %v, want 32", sum)
	}
	if sum := sequential.Sum([]int(nil)); sum != 0 {
		t.Errorf("got %v, want 0", sum)
	}
	if sum := sequential.Sum([]string{"ab", "c", "d"}); sum != "abcd" {
		t.Errorf("got %v, want abcd", sum)
	}
	if sum := sequential.SumFunc([]int{1, 2, 3}, func(x int) int { return x * x }); sum != 14 {
		t.Errorf("got %v, want 14", sum)
	}
}

func TestCount(t *testing.T) {
	s := []int{5, 3, 8, 3, 1, 9, 3}
	if count := sequential.Count(s, 3); count != 3 {
		t.Errorf("got %v, want 3", count)
	}
	if count := sequential.Count(s, 4); count != 0 {
		t.Errorf("got %v, want 0", count)
	}
	if count := sequential.CountFunc(s, func(x int) bool { return x > 3 }); count != 3 {
		t.Errorf("got %v, want 3", count)
	}
}

func TestIndex(t *testing.T) {
	s := []int{5, 3, 8, 3, 1, 9, 3}
	if i := sequential.Index(s, 3); i != 1 {
		t.Errorf("got %v, want 1", i)
	}
	if i := sequential.Index(s, 4); i != -1 {
		t.Errorf("got %v, want -1", i)
	}
	if i := sequential.IndexFunc(s, func(x int) bool { return x > 5 }); i != 2 {
		t.Errorf("got %v, want 2", i)
	}
	if i := sequential.IndexFuncNot(s, func(x int) bool { return x >= 3 }); i != 4 {
		t.Errorf("got %v, want 4", i)
	}
	if i := sequential.IndexFuncNot(s, func(x int) bool { return x >= 1 }); i != -1 {
		t.Errorf("got %v, want -1", i)
	}
}

func TestOfPredicates(t *testing.T) {
	s := []int{5, 3, 8, 3, 1, 9, 3}
	positive := func(x int) bool { return x > 0 }
	big := func(x int) bool { return x > 8 }
	negative := func(x int) bool { return x < 0 }

	if !sequential.AllOf(s, positive) || sequential.AllOf(s, big) {
		t.Errorf("AllOf incorrect")
	}
	if !sequential.AnyOf(s, big) || sequential.AnyOf(s, negative) {
		t.Errorf("AnyOf incorrect")
	}
	if !sequential.NoneOf(s, negative) || sequential.NoneOf(s, big) {
		t.Errorf("NoneOf incorrect")
	}
	if !sequential.AllOf(nil, negative) || sequential.AnyOf(nil, positive) || !sequential.NoneOf(nil, positive) {
		t.Errorf("empty slice incorrect")
	}
}

func TestMinMaxIndex(t *testing.T) {
	s := []int{5, 3, 9, 3, 1, 9, 1}
	cmp := func(a, b int) int { return a - b }

	if i := sequential.MaxIndex(s); i != 2 {
		t.Errorf("got %v, want 2", i)
	}
	if i := sequential.MaxIndexFunc(s, cmp); i != 2 {
		t.Errorf("got %v, want 2", i)
	}
	if i := sequential.MinIndex(s); i != 4 {
		t.Errorf("got %v, want 4", i)
	}
	if i := sequential.MinIndexFunc(s, cmp); i != 4 {
		t.Errorf("got %v, want 4", i)
	}

	if i := sequential.MaxIndex([]int{}); i != -1 {
		t.Errorf("got %v, want -1", i)
	}
	if i := sequential.MinIndexFunc(nil, cmp); i != -1 {
		t.Errorf("got %v, want -1", i)
	}
}

func TestEqual(t *testing.T) {
	a := []int{1, 2, 3}
	if !sequential.Equal(a, []int{1, 2, 3}) {
		t.Errorf("equal slices not equal")
	}
	if sequential.Equal(a, []int{1, 2, 4}) || sequential.Equal(a, []int{1, 2}) {
		t.Errorf("different slices equal")
	}
	if !sequential.Equal([]int{}, nil) {
		t.Errorf("empty slices not equal")
	}
	eq := func(x int, y string) bool { return len(y) == x }
	if !sequential.EqualFunc(a, []string{"x", "xx", "xxx"}, eq) {
		t.Errorf("EqualFunc incorrect")
	}
}

func TestCopyIf(t *testing.T) {
	src := []int{5, 3, 8, 3, 1, 9, 3}
	dst := make([]int, len(src))
	n := sequential.CopyIf(dst, src, func(x int) bool { return x != 3 })
	if n != 4 {
		t.Errorf("got %v, want 4", n)
	}
	if want := []int{5, 8, 1, 9}; !slices.Equal(dst[:n], want) {
		t.Errorf("got %v, want %v", dst[:n], want)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("no panic for a short destination")
		}
	}()
	sequential.CopyIf(make([]int, 2), src, func(x int) bool { return false })
}

func TestRemove(t *testing.T) {
	s := []int{5, 3, 8, 3, 1, 9, 3}
	n := sequential.Remove(s, 3)
	if n != 4 {
		t.Errorf("got %v, want 4", n)
	}
	if want := []int{5, 8, 1, 9}; !slices.Equal(s[:n], want) {
		t.Errorf("got %v, want %v", s[:n], want)
	}

	s = []int{5, 3, 8, 3, 1, 9, 3}
	n = sequential.RemoveFunc(s, func(x int) bool { return x < 4 })
	if n != 3 {
		t.Errorf("got %v, want 3", n)
	}
	if want := []int{5, 8, 9}; !slices.Equal(s[:n], want) {
		t.Errorf("got %v, want %v", s[:n], want)
	}

	if n := sequential.Remove([]int{}, 3); n != 0 {
		t.Errorf("got %v, want 0", n)
	}
}
