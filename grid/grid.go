package grid

import "fmt"

// MaxCells bounds Width*Height so every field length fits in an int.
const MaxCells = 1 << 28

// NewGeometry validates and returns a Width×Height geometry.
// Returns ErrInvalidDimensions if either side is zero or negative, or if the
// grid would hold more than MaxCells cells.
func NewGeometry(width, height int) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return Geometry{}, fmt.Errorf("%w: %d×%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}
	return Geometry{width: width, height: height}, nil
}

// MustGeometry is NewGeometry for constant dimensions; it panics on error.
func MustGeometry(width, height int) Geometry {
	g, err := NewGeometry(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g Geometry) Width() int { return g.width }

// Height returns the number of rows.
func (g Geometry) Height() int { return g.height }

// CellCount returns Width*Height, the length of every field on this geometry.
func (g Geometry) CellCount() int { return g.width * g.height }

// InBounds reports whether (x,y) lies within the grid.
func (g Geometry) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether c lies within the grid.
func (g Geometry) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// Index maps (x,y) to its row-major index. The caller must bounds-check first.
func (g Geometry) Index(x, y int) int {
	return x + y*g.width
}

// IndexOf maps c to its row-major index, or returns ErrOutOfBounds.
func (g Geometry) IndexOf(c Coord) (int, error) {
	if !g.Contains(c) {
		return 0, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.Index(c.X, c.Y), nil
}

// Coordinate converts a row-major index back to its cell.
func (g Geometry) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Neighbor returns the index of the cell one step from idx in direction d,
// and false when that cell lies outside the grid or d is not a movement direction.
func (g Geometry) Neighbor(idx int, d Direction) (int, bool) {
	if !d.Valid() {
		return 0, false
	}
	off := offsets[d]
	x, y := idx%g.width+off[0], idx/g.width+off[1]
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.Index(x, y), true
}

// CheckSize returns ErrSizeMismatch unless n equals CellCount().
func (g Geometry) CheckSize(n int) error {
	if n != g.CellCount() {
		return fmt.Errorf("%w: got %d cells, want %d (%d×%d)",
			ErrSizeMismatch, n, g.CellCount(), g.width, g.height)
	}
	return nil
}

// String renders the geometry as "W×H".
func (g Geometry) String() string {
	return fmt.Sprintf("%d×%d", g.width, g.height)
}
