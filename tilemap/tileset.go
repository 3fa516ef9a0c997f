package tilemap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/katalvlaran/flowfield/costfield"
	"gopkg.in/yaml.v3"
)

// DefaultCost is the weight of a tile with no explicit cost.
const DefaultCost = 1.0

var (
	// ErrUnknownTile indicates a tile name missing from the TileSet.
	ErrUnknownTile = errors.New("tilemap: unknown tile")

	// ErrUnknownGlyph indicates a map glyph missing from the Legend.
	ErrUnknownGlyph = errors.New("tilemap: glyph not in legend")

	// ErrBadGlyph indicates a legend key that is not exactly one character.
	ErrBadGlyph = errors.New("tilemap: legend key must be a single character")

	// ErrRaggedRows indicates map rows of different widths.
	ErrRaggedRows = errors.New("tilemap: rows differ in width")
)

// TileCost is the traversal cost of one tile kind.
type TileCost struct {
	Cost       float64 `yaml:"cost"`
	Impassable bool    `yaml:"impassable,omitempty"`
}

// DefaultTileCost returns a passable tile of DefaultCost.
func DefaultTileCost() TileCost { return TileCost{Cost: DefaultCost} }

// UnmarshalYAML decodes a tile entry, leaving Cost at DefaultCost when omitted.
func (t *TileCost) UnmarshalYAML(value *yaml.Node) error {
	type plain TileCost
	p := plain(DefaultTileCost())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = TileCost(p)
	return nil
}

// FieldCost converts t to a cost-field cell.
func (t TileCost) FieldCost() costfield.Cost {
	if t.Impassable {
		return costfield.Impassable
	}
	return costfield.Passable(t.Cost)
}

// TileSet maps tile names to their costs.
type TileSet map[string]TileCost

// Lookup returns the cost of name, or ErrUnknownTile with a suggestion when
// a similarly spelled tile exists.
func (ts TileSet) Lookup(name string) (TileCost, error) {
	if t, ok := ts[name]; ok {
		return t, nil
	}
	if s, ok := ts.Suggest(name); ok {
		return TileCost{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownTile, name, s)
	}
	return TileCost{}, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// Suggest returns the closest tile name to name by edit distance, if any is
// close enough. Ties resolve alphabetically.
func (ts TileSet) Suggest(name string) (string, bool) {
	names := make([]string, 0, len(ts))
	for n := range ts {
		names = append(names, n)
	}
	sort.Strings(names)

	best, bestDist := "", -1
	for _, cand := range names {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

// suggestLimit is the largest edit distance still worth suggesting.
func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
