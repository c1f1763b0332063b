package boards

import (
	"fmt"
	"math"

	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/layout"
)

// Kind identifies the physical role of a board.
type Kind int

const (
	Vertical Kind = iota
	Horizontal
	Backboard
)

func (k Kind) String() string {
	switch k {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Backboard:
		return "backboard"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Board is a single board request.
//
// Rect carries the geometry in the front elevation: a vertical board is the
// segment from (X, Y) up by Height with zero Width, a horizontal board the
// segment from (X, Y) right by Width with zero Height, and a backboard the
// full rect of its compartment. Row is the row whose pass requested it.
type Board struct {
	Kind Kind
	Row  int
	Rect geom.Rect
}

func (b Board) String() string {
	r := b.Rect
	switch b.Kind {
	case Vertical:
		return fmt.Sprintf("%s x=%g y=%g h=%g", b.Kind, r.X, r.Y, r.Height)
	case Horizontal:
		return fmt.Sprintf("%s x=%g y=%g w=%g", b.Kind, r.X, r.Y, r.Width)
	default:
		return fmt.Sprintf("%s x=%g y=%g w=%g h=%g", b.Kind, r.X, r.Y, r.Width, r.Height)
	}
}

func vertical(row int, x, y, height float64) Board {
	return Board{Kind: Vertical, Row: row, Rect: geom.Rect{X: x, Y: y, Height: height}}
}

func horizontal(row int, x, y, width float64) Board {
	return Board{Kind: Horizontal, Row: row, Rect: geom.Rect{X: x, Y: y, Width: width}}
}

func backboard(row int, r geom.Rect) Board {
	return Board{Kind: Backboard, Row: row, Rect: r}
}

// eps is the tolerance used when comparing elevations.
const eps = 1e-9

func same(a, b float64) bool { return math.Abs(a-b) <= eps }

// Derive returns the boards of l in emission order: for each row bottom to
// top, the backboards and vertical boards, then the bottom boards, the top
// boards of the topmost row and finally the row-end correction.
func Derive(l layout.Layout) []Board {
	var out []Board
	last := len(l.Rects) - 1
	for r, row := range l.Rects {
		var below []*geom.Rect
		if r > 0 {
			below = l.Rects[r-1]
		}
		out = append(out, edgeBoards(r, row)...)
		out = append(out, bottomBoards(r, row, below)...)
		if r == last {
			out = append(out, topBoards(r, row)...)
		}
		if b, ok := rowEndBoard(r, row); ok {
			out = append(out, b)
		}
	}
	return dedupe(out)
}

// edgeBoards returns the backboard and the side boards of every compartment.
// Only the first slot of a row gets a left board: every other left edge is
// the right edge of a neighbour, or of the spanning compartment below a gap.
func edgeBoards(r int, row []*geom.Rect) []Board {
	var out []Board
	for i, rc := range row {
		if rc == nil {
			continue
		}
		out = append(out, backboard(r, *rc))
		if i == 0 {
			out = append(out, vertical(r, rc.X, rc.Y, rc.Height))
		}
		out = append(out, vertical(r, rc.Right(), rc.Y, rc.Height))
	}
	return out
}

// dedupe drops boards with the same kind and geometry as an earlier one.
func dedupe(in []Board) []Board {
	type key struct {
		kind Kind
		rect geom.Rect
	}
	seen := make(map[key]bool, len(in))
	out := in[:0]
	for _, b := range in {
		k := key{b.Kind, b.Rect}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}
