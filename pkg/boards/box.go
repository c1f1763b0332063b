package boards

import (
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/scene"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// HorizontalOverlap is how much deeper horizontal boards are than the shelf,
// so they cover the front edges of the vertical boards.
const HorizontalOverlap = 0.2

// Dimensions are the material sizes needed to turn board requests into boxes.
type Dimensions struct {
	Depth              float64
	BoardThickness     float64
	BackboardThickness float64
}

// DimensionsOf returns the dimensions of s.
func DimensionsOf(s *shelf.Shelf) Dimensions {
	return Dimensions{
		Depth:              s.Depth,
		BoardThickness:     s.BoardThickness,
		BackboardThickness: s.BackboardThickness,
	}
}

// Box converts b into a box in scene space. Boards are centered on the edge
// they sit on. Vertical boards stop half a thickness short of both ends so
// they fit between the horizontal boards, which in turn run half a thickness
// past both ends. Backboards are inset by a quarter of their thickness on
// every side.
func (d Dimensions) Box(b Board) geom.Box {
	t := d.BoardThickness
	r := b.Rect
	o := r.Origin()
	switch b.Kind {
	case Vertical:
		return geom.Box{
			Origin: at(o.Add(geom.Point{X: -t / 2, Y: t / 2}), 0),
			Size:   geom.Vec3{X: t, Y: r.Height - t, Z: d.Depth},
		}
	case Horizontal:
		return geom.Box{
			Origin: at(o.Add(geom.Point{X: -t / 2, Y: -t / 2}), 0),
			Size:   geom.Vec3{X: r.Width + t, Y: t, Z: d.Depth + HorizontalOverlap},
		}
	default:
		i := d.BackboardThickness / 4
		return geom.Box{
			Origin: at(o.Add(geom.Point{X: i, Y: i}), i),
			Size:   geom.Vec3{X: r.Width - 2*i, Y: r.Height - 2*i, Z: d.BackboardThickness},
		}
	}
}

// at lifts a front elevation point to depth z.
func at(p geom.Point, z float64) geom.Vec3 { return geom.Vec3{X: p.X, Y: p.Y, Z: z} }

// Emit adds one box per board to sc, all with material m.
func Emit(sc scene.Scene, m scene.Material, d Dimensions, boards []Board) {
	for _, b := range boards {
		box := d.Box(b)
		sc.AddBox(box.Origin, box.Size, m)
	}
}
