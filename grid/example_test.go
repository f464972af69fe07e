// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// ExampleGrid_Neighbors shows the fixed left, up, right, down probe order and
// how boundary cells lose the neighbors that would fall outside the grid.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3)

	center, _ := g.Neighbors(grid.Coord{X: 1, Y: 1})
	corner, _ := g.Neighbors(grid.Coord{X: 0, Y: 0})
	fmt.Println("center:", center)
	fmt.Println("corner:", corner)

	// Output:
	// center: [{0 1} {1 0} {2 1} {1 2}]
	// corner: [{1 0} {0 1}]
}
