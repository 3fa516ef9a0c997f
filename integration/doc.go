// Package integration builds the integration field of a flow field: the
// cumulative path cost from every cell to one destination cell over an
// 8-connected grid.
//
// What
//
//   - Build seeds a FIFO work queue with the destination (distance 0) and
//     repeatedly pops a cell, relaxing its neighbors in the fixed order
//     N, NE, E, SE, S, SW, W, NW.
//   - A relaxation into neighbor n along direction d proposes
//     d.StepCost() + weight(n) + dist(current); it is kept when n has no
//     distance yet or the proposal is strictly lower, and n is re-enqueued.
//   - Impassable cells are never relaxed and never enqueued.
//   - Diagonal moves are gated: NE is only tried when both N and E are
//     passable, so paths never squeeze between two blocked corners.
//   - Hooks (WithOnDequeue, WithOnRelax) observe the wavefront.
//
// Why
//
//   - FIFO relaxation (Bellman–Ford style) converges to the same distances
//     as Dijkstra for non-negative weights, with a plain slice for a queue.
//     Step costs are small and bounded (1 or √2 plus the cell weight), so
//     re-enqueues stay cheap in practice. The processing order affects only
//     the amount of work, never the converged field.
//
// Complexity (N = cells)
//
//   - Time:   O(N) relaxations typically, O(N·8) re-enqueues worst case.
//   - Memory: O(N) for distances, reached flags and the queue.
//
// Errors
//
//   - grid.ErrSizeMismatch      cost field length differs from the geometry.
//   - grid.ErrOutOfBounds       destination outside the grid.
//   - costfield.ErrInvalidCost  a passable weight is negative or not finite.
//   - ErrNoField                destination is impassable; nothing is reachable.
//     Blank(g) returns the matching all-absent field.
package integration
