package tilemap

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/grid"
)

// Legend maps a map glyph to a tile name; an empty name marks "no tile".
type Legend map[rune]string

// ParseLegend converts a string-keyed legend (as found in YAML) to a Legend.
// Returns ErrBadGlyph for keys that are not exactly one character.
func ParseLegend(m map[string]string) (Legend, error) {
	out := make(Legend, len(m))
	for k, name := range m {
		r, size := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError || size != len(k) {
			return nil, fmt.Errorf("%w: %q", ErrBadGlyph, k)
		}
		out[r] = name
	}
	return out, nil
}

// Map is a rectangle of tile names, row-major.
type Map struct {
	geom  grid.Geometry
	tiles []string
}

// New returns a Map of g with no tiles placed.
func New(g grid.Geometry) *Map {
	return &Map{geom: g, tiles: make([]string, g.CellCount())}
}

// Parse builds a Map from text rows, one glyph per cell.
// Returns grid.ErrInvalidDimensions, ErrRaggedRows, or ErrUnknownGlyph.
func Parse(rows []string, legend Legend) (*Map, error) {
	width := 0
	if len(rows) > 0 {
		width = utf8.RuneCountInString(rows[0])
	}
	g, err := grid.NewGeometry(width, len(rows))
	if err != nil {
		return nil, err
	}

	m := New(g)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, n, width)
		}
		x := 0
		for _, r := range row {
			name, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownGlyph, r, grid.Coord{X: x, Y: y})
			}
			m.tiles[g.Index(x, y)] = name
			x++
		}
	}
	return m, nil
}

// Geometry returns the map's dimensions.
func (m *Map) Geometry() grid.Geometry { return m.geom }

// Tile returns the tile name at c ("" for no tile).
func (m *Map) Tile(c grid.Coord) (string, error) {
	idx, err := m.geom.IndexOf(c)
	if err != nil {
		return "", err
	}
	return m.tiles[idx], nil
}

// SetTile places name at c; "" removes the tile.
func (m *Map) SetTile(c grid.Coord, name string) error {
	idx, err := m.geom.IndexOf(c)
	if err != nil {
		return err
	}
	m.tiles[idx] = name
	return nil
}

// CostField resolves every tile through ts.
// Cells without a tile are impassable.
// Returns ErrUnknownTile or costfield.ErrInvalidCost.
func (m *Map) CostField(ts TileSet) (grid.Geometry, costfield.Field, error) {
	costs := costfield.New(m.geom)
	for i, name := range m.tiles {
		if name == "" {
			continue
		}
		t, err := ts.Lookup(name)
		if err != nil {
			return grid.Geometry{}, nil, fmt.Errorf("%w at %v", err, m.geom.Coordinate(i))
		}
		costs[i] = t.FieldCost()
	}
	if err := costs.Validate(m.geom); err != nil {
		return grid.Geometry{}, nil, err
	}
	return m.geom, costs, nil
}
