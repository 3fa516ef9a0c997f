// Package grid defines the fixed-size 2D index space shared by every field in
// github.com/katalvlaran/flowfield.
//
// What:
//
//   - Geometry holds Width×Height and projects (x,y) ↔ row-major index
//     (index = x + y*Width).
//   - Direction enumerates the 8 neighbor directions in the fixed priority
//     order N, NE, E, SE, S, SW, W, NW, plus DirNone (absent) and DirTarget
//     (the destination cell itself).
//   - Vector is the 2D flow vector a Direction maps to; cardinal directions
//     are unit axis vectors, diagonals use ±1/√2 on both axes.
//   - CoordFromFloat converts host (floating) coordinates into a Coord,
//     rejecting NaN and ±Inf.
//
// Why:
//
//   - Cost, integration and flow fields are flat slices addressed through one
//     Geometry. Keeping the projection in one place keeps every field
//     consistent and allocation-free per cell.
//
// Complexity:
//
//   - All Geometry and Direction operations are O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrSizeMismatch:      a field length differs from CellCount().
//   - ErrOutOfBounds:       a coordinate lies outside the grid.
//   - ErrInvalidCoordinate: a floating coordinate is NaN or infinite.
package grid
