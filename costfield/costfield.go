package costfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flowfield/grid"
)

// ErrInvalidCost indicates a passable weight that is negative or not finite.
var ErrInvalidCost = errors.New("costfield: cost must be finite and non-negative")

// Cost is the traversal weight of one cell, or the absence of one.
// The zero value is Impassable.
type Cost struct {
	weight   float64
	passable bool
}

// Impassable blocks traversal through a cell.
var Impassable = Cost{}

// Passable returns a traversable cost with the given weight.
func Passable(weight float64) Cost {
	return Cost{weight: weight, passable: true}
}

// Weight returns the traversal weight and whether the cell is passable.
func (c Cost) Weight() (float64, bool) {
	return c.weight, c.passable
}

// IsPassable reports whether the cell can be entered.
func (c Cost) IsPassable() bool { return c.passable }

// String renders the weight, or "#" for impassable cells.
func (c Cost) String() string {
	if !c.passable {
		return "#"
	}
	return fmt.Sprintf("%g", c.weight)
}

func (c Cost) valid() bool {
	return !c.passable || (c.weight >= 0 && !math.IsNaN(c.weight) && !math.IsInf(c.weight, 0))
}

// Field is a row-major cost map over a grid.Geometry.
type Field []Cost

// New returns a Field of g.CellCount() impassable cells.
func New(g grid.Geometry) Field {
	return make(Field, g.CellCount())
}

// Uniform returns a Field where every cell is passable with weight w.
func Uniform(g grid.Geometry, w float64) Field {
	f := make(Field, g.CellCount())
	for i := range f {
		f[i] = Passable(w)
	}
	return f
}

// FromWeights builds a Field from row-major weights; cells whose blocked
// entry is true become Impassable. blocked may be nil.
func FromWeights(g grid.Geometry, weights []float64, blocked []bool) (Field, error) {
	if err := g.CheckSize(len(weights)); err != nil {
		return nil, err
	}
	if blocked != nil {
		if err := g.CheckSize(len(blocked)); err != nil {
			return nil, err
		}
	}
	f := make(Field, len(weights))
	for i, w := range weights {
		if blocked != nil && blocked[i] {
			continue
		}
		f[i] = Passable(w)
	}
	return f, f.Validate(g)
}

// Set stores cost at c. Returns grid.ErrOutOfBounds for cells outside g.
func (f Field) Set(g grid.Geometry, c grid.Coord, cost Cost) error {
	idx, err := g.IndexOf(c)
	if err != nil {
		return err
	}
	f[idx] = cost
	return nil
}

// At returns the cost at c. Returns grid.ErrOutOfBounds for cells outside g.
func (f Field) At(g grid.Geometry, c grid.Coord) (Cost, error) {
	idx, err := g.IndexOf(c)
	if err != nil {
		return Impassable, err
	}
	return f[idx], nil
}

// Validate checks that f matches g and that every passable weight is finite and ≥ 0.
func (f Field) Validate(g grid.Geometry) error {
	if err := g.CheckSize(len(f)); err != nil {
		return err
	}
	for i, c := range f {
		if !c.valid() {
			return fmt.Errorf("%w: %v at %v", ErrInvalidCost, c.weight, g.Coordinate(i))
		}
	}
	return nil
}

// PassableCount counts the passable cells of f.
func (f Field) PassableCount() int {
	n := 0
	for _, c := range f {
		if c.passable {
			n++
		}
	}
	return n
}
