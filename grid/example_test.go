// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridscan/grid"
)

// ExampleFrom2D demonstrates building a grid from a 2D slice, reading a cell,
// and rendering the whole grid for diagnostics.
func ExampleFrom2D() {
	g, _ := grid.From2D([][]int{
		{1, 1, 2},
		{1, 3, 2},
	})

	v, _ := g.At(1, 1)
	fmt.Println("cell (1,1):", v)
	fmt.Print(g)

	// Output:
	// cell (1,1): 3
	// [1, 1, 2]
	// [1, 3, 2]
}

// ExampleGrid_Set demonstrates in-place cell mutation with bounds checking.
func ExampleGrid_Set() {
	g, _ := grid.New(2, 2)
	_ = g.Set(0, 1, 7)

	if err := g.Set(5, 5, 1); err != nil {
		fmt.Println("err:", err)
	}
	fmt.Print(g)

	// Output:
	// err: Grid.Set(5,5): grid: cell index out of range
	// [0, 7]
	// [0, 0]
}
