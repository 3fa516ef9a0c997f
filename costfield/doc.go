// Package costfield defines the per-cell traversal cost input of the flow
// field pipeline.
//
// A Field is a flat, row-major slice of Cost values laid over a
// grid.Geometry. Each Cost is either Passable(weight) with a finite weight
// ≥ 0, or Impassable. The weight is charged when a path enters the cell;
// impassable cells never receive a distance and block diagonal moves across
// their corner.
//
// The builders never mutate a Field. Callers that change costs build a new
// Field and recompute whatever depends on it.
//
// Errors:
//
//   - grid.ErrSizeMismatch: Field length differs from the geometry.
//   - ErrInvalidCost:       a passable weight is negative, NaN or infinite.
package costfield
