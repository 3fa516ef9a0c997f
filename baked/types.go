package baked

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("baked: invalid option supplied")

// Option configures Bake via functional arguments.
type Option func(*Options)

// Options holds the parameters of a bake.
type Options struct {
	// Ctx stops the bake between destination tasks when done.
	Ctx context.Context

	// Workers is the number of goroutines building fields.
	Workers int

	// Logger receives start and finish records.
	Logger *slog.Logger

	// OnField is called with the destination index of every completed field.
	// It runs on worker goroutines and must be safe for concurrent use.
	OnField func(dest int)

	err error
}

// DefaultOptions returns Options with a background context, GOMAXPROCS
// workers, a discarding logger and a no-op progress hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.DiscardHandler),
		OnField: func(int) {},
	}
}

// WithContext sets a context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker count.
//
//	n > 0:  use n workers
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger sets the logger for bake progress records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnField registers a progress hook.
func WithOnField(fn func(dest int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnField = fn
		}
	}
}

// Set holds one flow field per destination cell, indexed row-major by destination.
// It is immutable and safe for concurrent reads.
type Set struct {
	geom   grid.Geometry
	fields []*flowfield.Field
}

// NewSet assembles a Set from fields already computed (e.g. decoded), where
// fields[i] must be the field toward cell i on geometry g.
func NewSet(g grid.Geometry, fields []*flowfield.Field) (*Set, error) {
	if err := g.CheckSize(len(fields)); err != nil {
		return nil, err
	}
	for i, f := range fields {
		if f == nil || f.Geometry() != g {
			return nil, fmt.Errorf("%w: field for %v", grid.ErrSizeMismatch, g.Coordinate(i))
		}
	}
	out := make([]*flowfield.Field, len(fields))
	copy(out, fields)
	return &Set{geom: g, fields: out}, nil
}
