package boundaries_test

import (
	"fmt"

	"github.com/sevigo/semseg/boundaries"
)

func ExampleExtract() {
	h, err := boundaries.Extract(boundaries.PlainText("One. Two, three.\n\nFour."))
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	// Output: ((0, 18), (0, 5, 18), (0, 5, 10, 18), (0, 5, 10, 18))
}

func ExampleAdapt() {
	h := boundaries.NewHierarchy(boundaries.NewSet(0, 10), boundaries.NewSet(0, 3, 5, 10))

	fmt.Println(boundaries.Adapt(h, boundaries.NewWindow(3, 7)))
	fmt.Println(boundaries.Adapt(h, boundaries.NewWindow(3, 7).WithOverlap(5)))
	// Output:
	// ((0, 7), (0, 2, 7))
	// ((0, 12), (0, 5, 7, 12))
}
