package flowfield

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
)

// Sentinel errors for flow field construction and queries.
var (
	// ErrUnreachable indicates an in-bounds cell with no path to the destination.
	ErrUnreachable = errors.New("flowfield: unreachable position")
	// ErrBadDirection indicates a stored direction outside the known set,
	// or more than one destination marker.
	ErrBadDirection = errors.New("flowfield: invalid direction")
)

// Field stores one grid.Direction per cell. It is immutable and safe for
// concurrent reads.
type Field struct {
	geom grid.Geometry
	dest int // -1 when the field has no destination
	dirs []grid.Direction
}

// FromDirections rebuilds a Field from stored directions, e.g. after decoding.
// Every entry must be a movement direction, DirNone or DirTarget, with at most
// one DirTarget.
func FromDirections(g grid.Geometry, dirs []grid.Direction) (*Field, error) {
	if err := g.CheckSize(len(dirs)); err != nil {
		return nil, err
	}
	f := &Field{geom: g, dest: -1, dirs: make([]grid.Direction, len(dirs))}
	for i, d := range dirs {
		switch {
		case d == grid.DirTarget:
			if f.dest >= 0 {
				return nil, fmt.Errorf("%w: second destination at %v", ErrBadDirection, g.Coordinate(i))
			}
			f.dest = i
		case d != grid.DirNone && !d.Valid():
			return nil, fmt.Errorf("%w: %d at %v", ErrBadDirection, d, g.Coordinate(i))
		}
		f.dirs[i] = d
	}
	return f, nil
}

// Geometry returns the grid the field was built on.
func (f *Field) Geometry() grid.Geometry { return f.geom }

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.dirs) }

// Destination returns the destination cell; false for a field with none.
func (f *Field) Destination() (grid.Coord, bool) {
	if f.dest < 0 {
		return grid.Coord{}, false
	}
	return f.geom.Coordinate(f.dest), true
}

// At returns the direction stored for cell idx, DirNone outside the field.
func (f *Field) At(idx int) grid.Direction {
	if idx < 0 || idx >= len(f.dirs) {
		return grid.DirNone
	}
	return f.dirs[idx]
}

// Directions returns a copy of the row-major direction slice.
func (f *Field) Directions() []grid.Direction {
	out := make([]grid.Direction, len(f.dirs))
	copy(out, f.dirs)
	return out
}

// Reachable counts the cells with a direction (the destination included).
func (f *Field) Reachable() int {
	n := 0
	for _, d := range f.dirs {
		if d != grid.DirNone {
			n++
		}
	}
	return n
}
