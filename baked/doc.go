// Package baked precomputes one flow field per destination cell so that
// "flow from A toward B" becomes a constant-time lookup.
//
// What:
//
//   - Bake runs integration.Build + flowfield.Build once for every cell of
//     the grid, fanning the destinations out over a pool of worker
//     goroutines. Each task reads the shared geometry and cost field and
//     writes only its own slot of a preallocated result slice, so no locking
//     is needed on results.
//   - Impassable destinations get an all-absent field: every query toward
//     them reports flowfield.ErrUnreachable.
//   - Set answers CanFlow(from, to) / Flow(from, to) by delegating to the
//     field baked for `to`.
//
// Options:
//
//   - WithWorkers(n):  pool size; 0 means runtime.GOMAXPROCS(0).
//   - WithContext(ctx): stop handing out destinations once ctx is done.
//   - WithLogger(l):   slog logger for start / finish records (default: discard).
//   - WithOnField(fn): progress hook, called from worker goroutines.
//
// Complexity (N = cells):
//
//   - Time:   N single-field builds, O(N²) total, divided across workers.
//   - Memory: N flow fields of N directions each, O(N²) bytes.
//
// Determinism: completion order varies with scheduling, the stored fields do not.
package baked
