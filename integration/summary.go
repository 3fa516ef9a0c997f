package integration

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the reachable part of an integration field.
type Summary struct {
	Cells   int     // total cells
	Reached int     // cells with a distance
	Max     float64 // largest distance (0 when nothing is reached)
	Mean    float64 // mean distance over reached cells
}

// Summarize collects reachability and distance statistics for f.
func Summarize(f *Field) Summary {
	s := Summary{Cells: f.Len()}
	values := make([]float64, 0, f.Len())
	for i := range f.dist {
		if d, ok := f.At(i); ok {
			values = append(values, d)
		}
	}
	s.Reached = len(values)
	if s.Reached == 0 {
		return s
	}
	s.Max = floats.Max(values)
	s.Mean = stat.Mean(values, nil)
	return s
}
