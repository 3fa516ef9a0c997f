package fieldio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
)

// CostRecord is one cost-field cell.
type CostRecord struct {
	X          int     `csv:"x"`
	Y          int     `csv:"y"`
	Cost       float64 `csv:"cost"`
	Impassable bool    `csv:"impassable"`
}

// FlowRecord is one flow-field cell.
type FlowRecord struct {
	X         int     `csv:"x"`
	Y         int     `csv:"y"`
	DX        float64 `csv:"dx"`
	DY        float64 `csv:"dy"`
	Reachable bool    `csv:"reachable"`
}

// IntegrationRecord is one integration-field cell; Distance is 0 when unreached.
type IntegrationRecord struct {
	X         int     `csv:"x"`
	Y         int     `csv:"y"`
	Distance  float64 `csv:"distance"`
	Reachable bool    `csv:"reachable"`
}

// WriteCostCSV writes one CostRecord per cell of costs.
func WriteCostCSV(w io.Writer, g grid.Geometry, costs costfield.Field) error {
	if err := g.CheckSize(len(costs)); err != nil {
		return err
	}
	records := make([]CostRecord, len(costs))
	for i, c := range costs {
		at := g.Coordinate(i)
		weight, ok := c.Weight()
		records[i] = CostRecord{X: at.X, Y: at.Y, Cost: weight, Impassable: !ok}
	}
	return writeCSV(w, records)
}

// ReadCostCSV reads cost records; the grid spans the largest x and y seen.
// Cells without a record are impassable. Returns ErrMalformed for negative,
// oversized or duplicate cells, grid.ErrInvalidDimensions when there are no
// records or they span more than grid.MaxCells cells, and
// costfield.ErrInvalidCost for bad weights.
func ReadCostCSV(r io.Reader) (grid.Geometry, costfield.Field, error) {
	var records []CostRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return grid.Geometry{}, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	width, height := 0, 0
	for _, rec := range records {
		if rec.X < 0 || rec.Y < 0 {
			return grid.Geometry{}, nil, fmt.Errorf("%w: negative cell (%d, %d)", ErrMalformed, rec.X, rec.Y)
		}
		if rec.X >= grid.MaxCells || rec.Y >= grid.MaxCells {
			return grid.Geometry{}, nil, fmt.Errorf("%w: cell (%d, %d) beyond %d", ErrMalformed, rec.X, rec.Y, grid.MaxCells)
		}
		width, height = max(width, rec.X+1), max(height, rec.Y+1)
	}
	g, err := grid.NewGeometry(width, height)
	if err != nil {
		return grid.Geometry{}, nil, err
	}

	costs := costfield.New(g)
	seen := make([]bool, g.CellCount())
	for _, rec := range records {
		idx := g.Index(rec.X, rec.Y)
		if seen[idx] {
			return grid.Geometry{}, nil, fmt.Errorf("%w: duplicate cell (%d, %d)", ErrMalformed, rec.X, rec.Y)
		}
		seen[idx] = true
		if !rec.Impassable {
			costs[idx] = costfield.Passable(rec.Cost)
		}
	}
	if err := costs.Validate(g); err != nil {
		return grid.Geometry{}, nil, err
	}
	return g, costs, nil
}

// WriteFlowCSV writes one FlowRecord per cell of f.
func WriteFlowCSV(w io.Writer, f *flowfield.Field) error {
	g := f.Geometry()
	records := make([]FlowRecord, f.Len())
	for i := range records {
		at := g.Coordinate(i)
		d := f.At(i)
		rec := FlowRecord{X: at.X, Y: at.Y, Reachable: d != grid.DirNone}
		if rec.Reachable {
			v := d.Vector()
			rec.DX, rec.DY = v.X, v.Y
		}
		records[i] = rec
	}
	return writeCSV(w, records)
}

// WriteIntegrationCSV writes one IntegrationRecord per cell of f.
func WriteIntegrationCSV(w io.Writer, f *integration.Field) error {
	g := f.Geometry()
	records := make([]IntegrationRecord, f.Len())
	for i := range records {
		at := g.Coordinate(i)
		d, ok := f.At(i)
		records[i] = IntegrationRecord{X: at.X, Y: at.Y, Distance: d, Reachable: ok}
	}
	return writeCSV(w, records)
}

func writeCSV(w io.Writer, records any) error {
	data, err := gocsv.MarshalBytes(records)
	if err != nil {
		return fmt.Errorf("encoding csv: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
