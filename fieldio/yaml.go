package fieldio

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/flowfield/baked"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"gopkg.in/yaml.v3"
)

// ErrMalformed indicates a document that cannot be turned into a field.
var ErrMalformed = errors.New("fieldio: malformed document")

type flowDoc struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Field  []*[2]float64 `yaml:"field,flow"`
}

type bakedEntry struct {
	To    [2]int        `yaml:"to,flow"`
	Field []*[2]float64 `yaml:"field,flow"`
}

type bakedDoc struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Fields []bakedEntry `yaml:"fields"`
}

// EncodeFlowYAML writes f as a flow document.
func EncodeFlowYAML(w io.Writer, f *flowfield.Field) error {
	g := f.Geometry()
	return encodeYAML(w, flowDoc{Width: g.Width(), Height: g.Height(), Field: vectors(f)})
}

// DecodeFlowYAML reads a flow document.
func DecodeFlowYAML(r io.Reader) (*flowfield.Field, error) {
	var doc flowDoc
	if err := decodeYAML(r, &doc); err != nil {
		return nil, err
	}
	g, err := geometry(doc.Width, doc.Height)
	if err != nil {
		return nil, err
	}
	return fieldFromVectors(g, doc.Field)
}

// EncodeBakedYAML writes every field of s as a baked document.
func EncodeBakedYAML(w io.Writer, s *baked.Set) error {
	g := s.Geometry()
	doc := bakedDoc{Width: g.Width(), Height: g.Height()}
	for i, f := range s.Fields() {
		to := g.Coordinate(i)
		doc.Fields = append(doc.Fields, bakedEntry{To: [2]int{to.X, to.Y}, Field: vectors(f)})
	}
	return encodeYAML(w, doc)
}

// DecodeBakedYAML reads a baked document; entries must appear in row-major
// destination order.
func DecodeBakedYAML(r io.Reader) (*baked.Set, error) {
	var doc bakedDoc
	if err := decodeYAML(r, &doc); err != nil {
		return nil, err
	}
	g, err := geometry(doc.Width, doc.Height)
	if err != nil {
		return nil, err
	}
	if len(doc.Fields) != g.CellCount() {
		return nil, fmt.Errorf("%w: %d fields for %v", ErrMalformed, len(doc.Fields), g)
	}

	fields := make([]*flowfield.Field, len(doc.Fields))
	for i, e := range doc.Fields {
		if want := g.Coordinate(i); e.To != [2]int{want.X, want.Y} {
			return nil, fmt.Errorf("%w: entry %d is for %v, want %v", ErrMalformed, i, e.To, want)
		}
		if fields[i], err = fieldFromVectors(g, e.Field); err != nil {
			return nil, fmt.Errorf("field to %v: %w", e.To, err)
		}
	}
	return baked.NewSet(g, fields)
}

func encodeYAML(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func decodeYAML(r io.Reader, doc any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}

func geometry(width, height int) (grid.Geometry, error) {
	g, err := grid.NewGeometry(width, height)
	if err != nil {
		return grid.Geometry{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return g, nil
}

// vectors lists f's flow vectors, nil where a cell cannot flow.
func vectors(f *flowfield.Field) []*[2]float64 {
	out := make([]*[2]float64, f.Len())
	for i := range out {
		d := f.At(i)
		if d == grid.DirNone {
			continue
		}
		v := d.Vector()
		out[i] = &[2]float64{v.X, v.Y}
	}
	return out
}

func fieldFromVectors(g grid.Geometry, vs []*[2]float64) (*flowfield.Field, error) {
	if err := g.CheckSize(len(vs)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	dirs := make([]grid.Direction, len(vs))
	for i, v := range vs {
		if v == nil {
			dirs[i] = grid.DirNone
			continue
		}
		d, ok := grid.DirectionOf(grid.Vector{X: v[0], Y: v[1]})
		if !ok {
			return nil, fmt.Errorf("%w: %v at %v is not a unit direction", ErrMalformed, *v, g.Coordinate(i))
		}
		dirs[i] = d
	}
	f, err := flowfield.FromDirections(g, dirs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return f, nil
}
