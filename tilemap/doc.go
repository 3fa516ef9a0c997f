// Package tilemap turns a named-tile map into the geometry and cost field
// consumed by integration.Build and baked.Bake.
//
// A Map is a rectangle of tile names; the empty name means "no tile" and is
// impassable. A TileSet assigns each name a TileCost (default cost 1.0, or
// impassable). Parse reads a Map from text rows through a glyph Legend, which
// is how maps are written in configuration files:
//
//	legend := tilemap.Legend{'.': "grass", '~': "mud", '#': "wall"}
//	m, _ := tilemap.Parse([]string{"..#", ".~."}, legend)
//	g, costs, err := m.CostField(tileset)
//
// Unknown tile names fail with ErrUnknownTile; when a tile in the set is
// within a small edit distance, the error carries a "did you mean" hint.
package tilemap
