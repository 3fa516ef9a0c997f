package baked

import (
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
)

// Geometry returns the grid shared by every field.
func (s *Set) Geometry() grid.Geometry { return s.geom }

// Len returns the number of baked fields (one per cell).
func (s *Set) Len() int { return len(s.fields) }

// Field returns the flow field toward to. Returns grid.ErrOutOfBounds.
func (s *Set) Field(to grid.Coord) (*flowfield.Field, error) {
	idx, err := s.geom.IndexOf(to)
	if err != nil {
		return nil, err
	}
	return s.fields[idx], nil
}

// Fields returns the baked fields in destination order.
func (s *Set) Fields() []*flowfield.Field {
	out := make([]*flowfield.Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// CanFlow reports whether an agent at from has a direction toward to.
func (s *Set) CanFlow(from, to grid.Coord) bool {
	f, err := s.Field(to)
	return err == nil && f.CanFlow(from)
}

// Flow returns the flow vector at from toward to.
// Returns grid.ErrOutOfBounds (for either cell) or flowfield.ErrUnreachable.
func (s *Set) Flow(from, to grid.Coord) (grid.Vector, error) {
	f, err := s.Field(to)
	if err != nil {
		return grid.Vector{}, err
	}
	return f.Flow(from)
}

// CanFlowAt is CanFlow for host coordinates.
func (s *Set) CanFlowAt(fromX, fromY, toX, toY float64) bool {
	from, to, err := coords(fromX, fromY, toX, toY)
	return err == nil && s.CanFlow(from, to)
}

// FlowAt is Flow for host coordinates.
// Returns grid.ErrInvalidCoordinate when any component is NaN or infinite.
func (s *Set) FlowAt(fromX, fromY, toX, toY float64) (grid.Vector, error) {
	from, to, err := coords(fromX, fromY, toX, toY)
	if err != nil {
		return grid.Vector{}, err
	}
	return s.Flow(from, to)
}

func coords(fromX, fromY, toX, toY float64) (from, to grid.Coord, err error) {
	if to, err = grid.CoordFromFloat(toX, toY); err != nil {
		return
	}
	from, err = grid.CoordFromFloat(fromX, fromY)
	return
}
