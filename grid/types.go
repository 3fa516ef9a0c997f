package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a zero or negative width or height, or too many cells.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrSizeMismatch indicates a field whose length differs from the cell count.
	ErrSizeMismatch = errors.New("grid: field size does not match dimensions")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrInvalidCoordinate indicates a non-finite floating coordinate.
	ErrInvalidCoordinate = errors.New("grid: coordinate is not finite")
)

// Coord addresses one cell by column X and row Y.
type Coord struct {
	X, Y int
}

// Vector is a 2D flow vector. Y grows downwards (row order), so north is (0,-1).
type Vector struct {
	X, Y float64
}

// Geometry is an immutable Width×Height index space.
// The zero value has no cells; use NewGeometry to obtain a usable one.
type Geometry struct {
	width, height int
}
