package io

import (
	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/scene"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

type description struct {
	Depth              float64   `json:"depth" toml:"depth" yaml:"depth"`
	BoardThickness     float64   `json:"board_thickness" toml:"board_thickness" yaml:"board_thickness"`
	BackboardThickness float64   `json:"backboard_thickness" toml:"backboard_thickness" yaml:"backboard_thickness"`
	Color              []float64 `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	Rows               []row     `json:"rows" toml:"rows" yaml:"rows"`
}

type row struct {
	Align  string  `json:"align,omitempty" toml:"align,omitempty" yaml:"align,omitempty"`
	Indent float64 `json:"indent,omitempty" toml:"indent,omitempty" yaml:"indent,omitempty"`
	Slots  []slot  `json:"slots" toml:"slots" yaml:"slots"`
}

type slot struct {
	Gap    bool    `json:"gap,omitempty" toml:"gap,omitempty" yaml:"gap,omitempty"`
	Width  float64 `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Span   int     `json:"span,omitempty" toml:"span,omitempty" yaml:"span,omitempty"`
}

// toShelf converts a decoded document. Only structural problems are
// reported here.
func (d description) toShelf() (*shelf.Shelf, error) {
	s := shelf.New(d.Depth, d.BoardThickness, d.BackboardThickness)
	if d.Color != nil {
		if len(d.Color) != 3 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "color must have 3 components, got %d", len(d.Color))
		}
		s.Color = scene.Color{R: d.Color[0], G: d.Color[1], B: d.Color[2]}
	}
	for i, r := range d.Rows {
		align, err := shelf.ParseAlignment(r.Align)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "row %d", i)
		}
		slots := make([]shelf.Slot, len(r.Slots))
		for j, sl := range r.Slots {
			if sl.Gap {
				if sl.Width != 0 || sl.Height != 0 || sl.Span != 0 {
					return nil, errors.New(errors.ErrCodeInvalidInput, "row %d slot %d: a gap has no width, height or span", i, j)
				}
				slots[j] = shelf.Gap()
				continue
			}
			slots[j] = shelf.Cell(shelf.Compartment{Width: sl.Width, Height: sl.Height, VerticalSpan: sl.Span})
		}
		s.AddRow(shelf.NewRow(align, r.Indent, slots...))
	}
	return s, nil
}

func fromShelf(s *shelf.Shelf) description {
	d := description{
		Depth:              s.Depth,
		BoardThickness:     s.BoardThickness,
		BackboardThickness: s.BackboardThickness,
		Rows:               make([]row, len(s.Rows)),
	}
	if s.Color != shelf.DefaultColor {
		d.Color = []float64{s.Color.R, s.Color.G, s.Color.B}
	}
	for i, r := range s.Rows {
		out := row{Indent: r.Indent, Slots: make([]slot, len(r.Slots))}
		if r.Alignment != shelf.AlignBottom {
			out.Align = r.Alignment.String()
		}
		for j, sl := range r.Slots {
			c, ok := sl.Compartment()
			if !ok {
				out.Slots[j] = slot{Gap: true}
				continue
			}
			out.Slots[j] = slot{Width: c.Width, Height: c.Height}
			if c.Spanning() {
				out.Slots[j].Span = c.Span()
			}
		}
		d.Rows[i] = out
	}
	return d
}
