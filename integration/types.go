package integration

import (
	"errors"

	"github.com/katalvlaran/flowfield/grid"
)

// ErrNoField is returned when the destination itself is impassable.
var ErrNoField = errors.New("integration: destination is impassable, no field")

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds the observation hooks of Build.
type Options struct {
	// OnDequeue is called when a cell is popped from the work queue,
	// with its distance at that moment.
	OnDequeue func(idx int, dist float64)

	// OnRelax is called after a neighbor's distance improved,
	// just before it is enqueued.
	OnRelax func(idx int, dist float64)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnDequeue: func(int, float64) {},
		OnRelax:   func(int, float64) {},
	}
}

// WithOnDequeue registers a callback run for every dequeued cell.
func WithOnDequeue(fn func(idx int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnRelax registers a callback run for every improving relaxation.
func WithOnRelax(fn func(idx int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Field is a completed integration field. It is immutable and safe for
// concurrent reads.
type Field struct {
	geom    grid.Geometry
	dest    int // -1 for a blank field
	dist    []float64
	reached []bool
}

// Blank returns the all-absent field of g: the stand-in for "no field"
// when the destination is impassable.
func Blank(g grid.Geometry) *Field {
	return newField(g, -1)
}

func newField(g grid.Geometry, dest int) *Field {
	n := g.CellCount()
	return &Field{
		geom:    g,
		dest:    dest,
		dist:    make([]float64, n),
		reached: make([]bool, n),
	}
}

// Geometry returns the grid the field was built on.
func (f *Field) Geometry() grid.Geometry { return f.geom }

// Len returns the number of cells.
func (f *Field) Len() int { return len(f.dist) }

// Destination returns the destination cell; false for a blank field.
func (f *Field) Destination() (grid.Coord, bool) {
	if f.dest < 0 {
		return grid.Coord{}, false
	}
	return f.geom.Coordinate(f.dest), true
}

// DestinationIndex returns the destination's row-major index, or -1.
func (f *Field) DestinationIndex() int { return f.dest }

// At returns the distance of cell idx and whether it was reached.
func (f *Field) At(idx int) (float64, bool) {
	if idx < 0 || idx >= len(f.dist) || !f.reached[idx] {
		return 0, false
	}
	return f.dist[idx], true
}

// DistanceAt returns the distance at c; false when c is out of bounds or unreached.
func (f *Field) DistanceAt(c grid.Coord) (float64, bool) {
	if !f.geom.Contains(c) {
		return 0, false
	}
	return f.At(f.geom.Index(c.X, c.Y))
}

// Reached counts the cells that have a distance.
func (f *Field) Reached() int {
	n := 0
	for _, r := range f.reached {
		if r {
			n++
		}
	}
	return n
}
