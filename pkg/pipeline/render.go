package pipeline

import (
	"bytes"

	"github.com/matzehuels/stackshelf/pkg/boards"
	"github.com/matzehuels/stackshelf/pkg/layout"
	"github.com/matzehuels/stackshelf/pkg/scene"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Render lays out s, adds one box per board to sc and writes sc to path.
//
// A shelf without rows is a no-op: sc receives no call at all. Every
// description and layout error is returned before the first box is added,
// and sc.Write is only reached after all boxes were added.
func Render(s *shelf.Shelf, sc scene.Scene, path string) error {
	if len(s.Rows) == 0 {
		return nil
	}
	_, bs, err := Build(s)
	if err != nil {
		return err
	}
	Emit(s, sc, bs)
	return sc.Write(path)
}

// Build validates s and returns its layout and boards.
func Build(s *shelf.Shelf) (layout.Layout, []boards.Board, error) {
	if err := s.Validate(); err != nil {
		return layout.Layout{}, nil, err
	}
	l, err := layout.Compute(s.Rows)
	if err != nil {
		return layout.Layout{}, nil, err
	}
	return l, boards.Derive(l), nil
}

// Emit creates the shelf material in sc and adds the boxes of bs.
func Emit(s *shelf.Shelf, sc scene.Scene, bs []boards.Board) {
	m := sc.CreateMaterial(s.Color)
	boards.Emit(sc, m, boards.DimensionsOf(s), bs)
}

// RenderBytes emits bs into a new scene of format f and returns the
// serialized scene.
func RenderBytes(s *shelf.Shelf, bs []boards.Board, f sink.Format) ([]byte, error) {
	sc, err := sink.New(f)
	if err != nil {
		return nil, err
	}
	Emit(s, sc, bs)

	var buf bytes.Buffer
	if _, err := sc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
