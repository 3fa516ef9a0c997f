package flowfield

import (
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// CanFlow reports whether c is inside the grid and has a direction.
// The destination counts: its direction is grid.DirTarget with a zero vector.
func (f *Field) CanFlow(c grid.Coord) bool {
	return f.geom.Contains(c) && f.dirs[f.geom.Index(c.X, c.Y)] != grid.DirNone
}

// Direction returns the stored direction at c.
// Returns grid.ErrOutOfBounds or ErrUnreachable.
func (f *Field) Direction(c grid.Coord) (grid.Direction, error) {
	idx, err := f.geom.IndexOf(c)
	if err != nil {
		return grid.DirNone, err
	}
	d := f.dirs[idx]
	if d == grid.DirNone {
		return grid.DirNone, fmt.Errorf("%w: %v", ErrUnreachable, c)
	}
	return d, nil
}

// Flow returns the flow vector at c; the destination yields the zero vector.
// Returns the zero vector with grid.ErrOutOfBounds or ErrUnreachable.
func (f *Field) Flow(c grid.Coord) (grid.Vector, error) {
	d, err := f.Direction(c)
	if err != nil {
		return grid.Vector{}, err
	}
	return d.Vector(), nil
}

// CanFlowAt is CanFlow for host coordinates; non-finite input cannot flow.
func (f *Field) CanFlowAt(x, y float64) bool {
	c, err := grid.CoordFromFloat(x, y)
	if err != nil {
		return false
	}
	return f.CanFlow(c)
}

// FlowAt is Flow for host coordinates.
// Returns grid.ErrInvalidCoordinate for NaN or infinite components.
func (f *Field) FlowAt(x, y float64) (grid.Vector, error) {
	c, err := grid.CoordFromFloat(x, y)
	if err != nil {
		return grid.Vector{}, err
	}
	return f.Flow(c)
}
