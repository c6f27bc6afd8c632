package sort_test

import (
	"fmt"

	"github.com/ahboujelben/ABParallel/sort"
)

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("%s: %d", p.Name, p.Age)
}

func ExampleSortFunc() {
	people := []Person{
		{"Alice", 55},
		{"Bernard", 34},
		{"Chantal", 72},
		{"Dirk", 21},
	}

	sort.SortFunc(people, func(a, b Person) int { return a.Age - b.Age }, 2)
	fmt.Println(people)

	// Output:
	// [Dirk: 21 Bernard: 34 Alice: 55 Chantal: 72]
}

func ExampleMerge() {
	s := []int{1, 4, 9, 2, 3, 8}
	sort.Merge(s, 3)
	fmt.Println(s)

	// Output:
	// [1 2 3 4 8 9]
}
