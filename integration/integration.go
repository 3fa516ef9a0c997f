package integration

import (
	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/grid"
)

// walker encapsulates mutable wavefront state.
type walker struct {
	geom  grid.Geometry
	costs costfield.Field
	opts  Options
	queue []int
	field *Field
}

// Build computes the integration field toward dest over costs.
// Returns grid.ErrSizeMismatch, grid.ErrOutOfBounds or costfield.ErrInvalidCost
// for invalid input, and ErrNoField when dest is impassable.
func Build(g grid.Geometry, dest grid.Coord, costs costfield.Field, opts ...Option) (*Field, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := costs.Validate(g); err != nil {
		return nil, err
	}
	destIdx, err := g.IndexOf(dest)
	if err != nil {
		return nil, err
	}
	if !costs[destIdx].IsPassable() {
		return nil, ErrNoField
	}

	w := &walker{
		geom:  g,
		costs: costs,
		opts:  o,
		queue: make([]int, 0, g.CellCount()),
		field: newField(g, destIdx),
	}
	w.field.dist[destIdx] = 0
	w.field.reached[destIdx] = true
	w.queue = append(w.queue, destIdx)
	w.loop()

	return w.field, nil
}

// loop drains the queue; every pop relaxes the popped cell's neighbors.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]
		cur := w.field.dist[idx]
		w.opts.OnDequeue(idx, cur)
		for _, d := range grid.Directions {
			w.relax(idx, cur, d)
		}
	}
}

// relax proposes a path from cell idx (at distance cur) into its neighbor along d.
func (w *walker) relax(idx int, cur float64, d grid.Direction) {
	n, ok := w.geom.Neighbor(idx, d)
	if !ok {
		return
	}
	weight, passable := w.costs[n].Weight()
	if !passable {
		return
	}
	if d.Diagonal() && !w.cornerOpen(idx, d) {
		return
	}
	candidate := d.StepCost() + weight + cur
	if w.field.reached[n] && candidate >= w.field.dist[n] {
		return
	}
	w.field.dist[n] = candidate
	w.field.reached[n] = true
	w.opts.OnRelax(n, candidate)
	w.queue = append(w.queue, n)
}

// cornerOpen reports whether both orthogonal cells flanking the diagonal step
// from idx along d are passable. An in-bounds diagonal implies in-bounds flanks.
func (w *walker) cornerOpen(idx int, d grid.Direction) bool {
	vert, horiz := d.Corner()
	v, okV := w.geom.Neighbor(idx, vert)
	h, okH := w.geom.Neighbor(idx, horiz)
	return okV && okH && w.costs[v].IsPassable() && w.costs[h].IsPassable()
}
