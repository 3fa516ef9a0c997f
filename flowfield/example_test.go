package flowfield_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
)

// ExampleBuild derives directions on a 3×3 map whose north-center cell is
// blocked: the top corners step south around the corner instead of cutting it.
func ExampleBuild() {
	g := grid.MustGeometry(3, 3)
	costs := costfield.Uniform(g, 0)
	_ = costs.Set(g, grid.Coord{X: 1, Y: 0}, costfield.Impassable)

	integ, err := integration.Build(g, grid.Coord{X: 1, Y: 1}, costs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	f, err := flowfield.Build(g, integ)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < g.Height(); y++ {
		var row strings.Builder
		for x := 0; x < g.Width(); x++ {
			d, _ := f.Direction(grid.Coord{X: x, Y: y})
			fmt.Fprintf(&row, "%-7s", d)
		}
		fmt.Println(strings.TrimRight(row.String(), " "))
	}
	// Output:
	// S      none   S
	// E      target W
	// NE     N      NW
}

// ExampleField_Flow shows the degrade-to-zero pattern for query errors.
func ExampleField_Flow() {
	g := grid.MustGeometry(2, 1)
	integ, _ := integration.Build(g, grid.Coord{X: 0, Y: 0}, costfield.Uniform(g, 1))
	f, _ := flowfield.Build(g, integ)

	for _, c := range []grid.Coord{{X: 1, Y: 0}, {X: 5, Y: 0}} {
		v, err := f.Flow(c)
		if err != nil {
			fmt.Println("no movement:", err)
			continue
		}
		fmt.Printf("%v -> (%g, %g)\n", c, v.X, v.Y)
	}
	// Output:
	// {1 0} -> (-1, 0)
	// no movement: grid: position out of bounds: {5 0} in 2×1
}
