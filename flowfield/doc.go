// Package flowfield derives per-cell movement directions from an
// integration field and answers "which way from here" queries.
//
// What:
//
//   - Build walks every cell once. Unreached cells get grid.DirNone, the
//     destination gets grid.DirTarget (zero vector), every other reached cell
//     points at its neighbor with the strictly smallest distance. Ties go to
//     the first direction in N, NE, E, SE, S, SW, W, NW order; unreached and
//     out-of-bounds neighbors never win.
//   - Corner suppression: when the winner is diagonal and exactly one of its
//     two flanking orthogonal neighbors is reached, the flow turns along that
//     orthogonal instead, so agents walk around a blocked corner rather than
//     clipping it. Both reached or both unreached keeps the diagonal.
//   - CanFlow / Flow query a cell; CanFlowAt / FlowAt accept host floating
//     coordinates, floor them to a cell and reject non-finite ones.
//   - The destination itself reports CanFlow == true and Flow returns the zero
//     vector: an agent there has arrived. Callers that need "has a movement
//     direction" should check Direction(c) != grid.DirTarget as well.
//
// Why:
//
//   - One field serves any number of agents heading to the same destination;
//     each agent samples its cell instead of running its own search.
//
// Complexity:
//
//   - Build: O(N·8) time, O(N) memory (one int8 per cell).
//   - Queries: O(1).
//
// Errors:
//
//   - grid.ErrSizeMismatch:      integration field missing or on another geometry.
//   - grid.ErrOutOfBounds:       queried cell outside the grid.
//   - grid.ErrInvalidCoordinate: queried coordinate is NaN or infinite.
//   - ErrUnreachable:            queried cell has no path to the destination.
//
// Callers receiving a query error should treat it as "no movement" (zero
// vector) and may log the error for diagnosis.
package flowfield
