// Package render draws fields as text: one rune per cell for flow and cost
// fields, fixed-width columns for distances. Output is row-major, one line
// per grid row.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
)

// Cell glyphs that are not arrows.
const (
	TargetRune = '●'
	NoneRune   = '·'
	WallRune   = '#'
	HeavyRune  = '+'
)

var arrows = [grid.DirCount]rune{
	'↑', '↗', '→', '↘', '↓', '↙', '←', '↖',
}

// Arrow returns the glyph for d.
func Arrow(d grid.Direction) rune {
	switch {
	case d == grid.DirTarget:
		return TargetRune
	case d.Valid():
		return arrows[d]
	default:
		return NoneRune
	}
}

// CostRune returns the glyph for one cost cell: WallRune when impassable,
// the floored weight as a digit below 10, HeavyRune otherwise.
func CostRune(c costfield.Cost) rune {
	w, ok := c.Weight()
	switch {
	case !ok:
		return WallRune
	case w < 10:
		return '0' + rune(w)
	default:
		return HeavyRune
	}
}

// Flow writes f as arrow rows.
func Flow(w io.Writer, f *flowfield.Field) error {
	g := f.Geometry()
	return rows(w, g, func(idx int) string { return string(Arrow(f.At(idx))) })
}

// Costs writes costs as glyph rows.
func Costs(w io.Writer, g grid.Geometry, costs costfield.Field) error {
	if err := g.CheckSize(len(costs)); err != nil {
		return err
	}
	return rows(w, g, func(idx int) string { return string(CostRune(costs[idx])) })
}

// Distances writes f as space-separated columns; unreached cells print "-".
func Distances(w io.Writer, f *integration.Field) error {
	return rows(w, f.Geometry(), func(idx int) string {
		d, ok := f.At(idx)
		if !ok {
			return fmt.Sprintf("%6s", "-")
		}
		return fmt.Sprintf("%6.2f", d)
	})
}

// Gradient maps a distance to a color: bright cyan at the destination,
// dim blue at maxDist. maxDist <= 0 is treated as 1.
func Gradient(dist, maxDist float64) (r, g, b uint8) {
	if maxDist <= 0 {
		maxDist = 1
	}
	t := 1 - min(max(dist/maxDist, 0), 1)
	return uint8(40 + t*60), uint8(80 + t*175), uint8(120 + t*135)
}

func rows(w io.Writer, g grid.Geometry, cell func(idx int) string) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			bw.WriteString(cell(g.Index(x, y)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
