package flowfield

import (
	"fmt"

	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
)

// Build derives the flow field of integ on g.
// Returns grid.ErrSizeMismatch when integ is nil or built on another geometry.
func Build(g grid.Geometry, integ *integration.Field) (*Field, error) {
	if integ == nil {
		return nil, fmt.Errorf("%w: nil integration field", grid.ErrSizeMismatch)
	}
	if err := g.CheckSize(integ.Len()); err != nil {
		return nil, err
	}
	if integ.Geometry() != g {
		return nil, fmt.Errorf("%w: integration field is %v, want %v", grid.ErrSizeMismatch, integ.Geometry(), g)
	}

	f := &Field{
		geom: g,
		dest: integ.DestinationIndex(),
		dirs: make([]grid.Direction, g.CellCount()),
	}
	for idx := range f.dirs {
		f.dirs[idx] = descend(g, integ, idx)
	}
	return f, nil
}

// descend picks the flow direction of cell idx.
func descend(g grid.Geometry, integ *integration.Field, idx int) grid.Direction {
	if _, ok := integ.At(idx); !ok {
		return grid.DirNone
	}
	if idx == integ.DestinationIndex() {
		return grid.DirTarget
	}

	best := grid.DirNone
	var bestDist float64
	for _, d := range grid.Directions {
		n, ok := g.Neighbor(idx, d)
		if !ok {
			continue
		}
		nd, ok := integ.At(n)
		if !ok {
			continue
		}
		// strict: the earlier direction keeps ties
		if best == grid.DirNone || nd < bestDist {
			best, bestDist = d, nd
		}
	}
	if !best.Diagonal() {
		return best
	}

	vert, horiz := best.Corner()
	v, h := reached(g, integ, idx, vert), reached(g, integ, idx, horiz)
	switch {
	case v == h:
		return best
	case v:
		return vert
	default:
		return horiz
	}
}

func reached(g grid.Geometry, integ *integration.Field, idx int, d grid.Direction) bool {
	n, ok := g.Neighbor(idx, d)
	if !ok {
		return false
	}
	_, ok = integ.At(n)
	return ok
}
