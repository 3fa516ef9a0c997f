// Package fieldio reads and writes fields as YAML documents and CSV tables.
//
// YAML (gopkg.in/yaml.v3):
//
//	width: 2
//	height: 1
//	field: [[1, 0], [0, 0]]
//
// A flow document lists one optional [x, y] vector per cell, row-major, with
// null for cells that cannot flow and [0, 0] for the destination. A baked
// document holds one such field per destination under `fields`, each tagged
// with its `to` cell. Decoding rejects unknown keys, size mismatches and
// vectors that are not one of the eight unit directions.
//
// CSV (github.com/gocarina/gocsv), one record per cell:
//
//	costs:       x,y,cost,impassable        (read and write)
//	flow:        x,y,dx,dy,reachable        (write)
//	integration: x,y,distance,reachable     (write)
//
// Errors: ErrMalformed wraps every decoding failure; grid and costfield
// sentinels pass through where they apply.
package fieldio
