// Package flowfield is a toolkit for steering many agents across a 2D tile
// grid toward a shared destination: every cell stores the single direction
// to move in, so per-agent pathfinding becomes a lookup.
//
// 🚀 What is inside?
//
//	• Grid primitives: dimensions, row-major projection, 8-way directions
//	• Cost fields: per-cell traversal weights, impassable cells
//	• Integration fields: cumulative cost-to-destination (wavefront relaxation)
//	• Flow fields: steepest-descent directions with corner suppression
//	• Baking: one flow field per destination, built on a worker pool
//	• Adapters: tile maps, YAML/CSV serialization, text and terminal rendering
//
// ✨ Why flow fields?
//
//   - One computation serves any number of agents heading to the same cell
//   - Queries are O(1) and safe for concurrent readers
//   - Deterministic - identical inputs give identical fields, regardless of workers
//   - Hooks (OnDequeue, OnRelax) for tracing the wavefront
//
// Packages, leaf to root:
//
//	grid/        Geometry, Coord, Direction, Vector
//	costfield/   Cost, Field
//	integration/ Build, Blank, Summarize
//	flowfield/   Build, FromDirections, CanFlow / Flow queries
//	baked/       Bake, Set
//	tilemap/     Map, TileSet, Legend → cost fields
//	fieldio/     YAML documents, CSV tables
//	config/      YAML configuration with embedded defaults
//	render/      arrow / cost / distance text renderings
//	cmd/flowgen  batch generator
//	cmd/flowview interactive terminal viewer
//
// Quick ASCII example (3×3, center destination, top-middle wall):
//
//	↓ · ↓
//	→ ● ←
//	↗ ↑ ↖
//
// The corners above the wall point straight down: cutting diagonally past a
// blocked cell is never suggested.
//
//	go get github.com/katalvlaran/flowfield
package flowfield
