package baked

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
)

// Bake computes the flow field toward every cell of g.
// Returns grid.ErrSizeMismatch or costfield.ErrInvalidCost for bad input,
// ErrOptionViolation for bad options, and the context error when cancelled.
func Bake(g grid.Geometry, costs costfield.Field, opts ...Option) (*Set, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := costs.Validate(g); err != nil {
		return nil, err
	}

	n := g.CellCount()
	workers := min(o.Workers, n)
	fields := make([]*flowfield.Field, n)
	errs := make([]error, workers)

	o.Logger.Info("baking flow fields", "fields", n, "geometry", g.String(), "workers", workers)
	start := time.Now()

	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for dest := range jobs {
				f, err := bakeOne(g, dest, costs)
				if err != nil {
					errs[id] = err
					cancel()
					return
				}
				fields[dest] = f
				o.OnField(dest)
			}
		}(id)
	}

feed:
	for dest := 0; dest < n; dest++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- dest:
		}
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := o.Ctx.Err(); err != nil {
		o.Logger.Warn("bake cancelled", "error", err)
		return nil, err
	}

	o.Logger.Info("baked flow fields", "fields", n, "elapsed", time.Since(start))
	return &Set{geom: g, fields: fields}, nil
}

// bakeOne runs the single-destination pipeline for cell dest.
func bakeOne(g grid.Geometry, dest int, costs costfield.Field) (*flowfield.Field, error) {
	integ, err := integration.Build(g, g.Coordinate(dest), costs)
	if errors.Is(err, integration.ErrNoField) {
		integ = integration.Blank(g)
	} else if err != nil {
		return nil, err
	}
	return flowfield.Build(g, integ)
}
