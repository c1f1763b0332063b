package boards

import (
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/layout"
)

// segment is a horizontal run of boards at one elevation.
type segment struct {
	start, end, level float64
}

// grouper is the scanning automaton shared by bottom and top boards. It is
// either outside any group or grouping compartments that share an elevation,
// starting at start.
type grouper struct {
	level func(geom.Rect) float64

	grouping  bool
	start     float64
	at        float64
	lastRight float64
	segments  []segment
}

func (g *grouper) gap() {
	if g.grouping {
		g.segments = append(g.segments, segment{g.start, g.lastRight, g.at})
		g.grouping = false
	}
}

func (g *grouper) rect(r geom.Rect, start float64) {
	switch lvl := g.level(r); {
	case !g.grouping:
		g.grouping, g.start, g.at = true, start, lvl
	case !same(lvl, g.at):
		g.segments = append(g.segments, segment{g.start, r.X, g.at})
		g.start, g.at = r.X, lvl
	}
	g.lastRight = r.Right()
}

// finish closes the open group, if any, and reports whether the row ended
// inside a group.
func (g *grouper) finish() ([]segment, bool) {
	open := g.grouping
	g.gap()
	return g.segments, open
}

// scan runs the automaton over row. When seeded, a group opened by the first
// slot starts at min(rect.X, seed) instead of rect.X.
func scan(row []*geom.Rect, level func(geom.Rect) float64, seed float64, seeded bool) ([]segment, bool) {
	g := grouper{level: level}
	for i, rc := range row {
		if rc == nil {
			g.gap()
			continue
		}
		start := rc.X
		if i == 0 && seeded {
			start = min(start, seed)
		}
		g.rect(*rc, start)
	}
	return g.finish()
}

func base(r geom.Rect) float64 { return r.Y }
func top(r geom.Rect) float64  { return r.Top() }

// bottomBoards groups the row by base elevation. The first group is pulled
// left to the first compartment of the row below when that one starts
// further left, and a row that ends in a compartment is extended right over
// the row below so no lower compartment is left without a top.
func bottomBoards(r int, row, below []*geom.Rect) []Board {
	first, seeded := layout.First(below)
	segs, open := scan(row, base, first.X, seeded)
	if open && len(below) > 0 {
		last := &segs[len(segs)-1]
		last.end = max(last.end, reach(last.end, below))
	}
	return boardsOf(r, segs)
}

// topBoards groups the row by top elevation.
func topBoards(r int, row []*geom.Rect) []Board {
	segs, _ := scan(row, top, 0, false)
	return boardsOf(r, segs)
}

func boardsOf(r int, segs []segment) []Board {
	out := make([]Board, 0, len(segs))
	for _, s := range segs {
		out = append(out, horizontal(r, s.start, s.level, s.end-s.start))
	}
	return out
}

// reach returns how far right a board at x may extend over below: from the
// last compartment whose span contains x, across the following compartments
// with the same top. Gaps are skipped. Without such a compartment reach is x.
func reach(x float64, below []*geom.Rect) float64 {
	idx := -1
	for j, b := range below {
		if b != nil && b.X <= x+eps && x <= b.Right()+eps {
			idx = j
		}
	}
	if idx < 0 {
		return x
	}
	level, right := below[idx].Top(), below[idx].Right()
	for _, b := range below[idx+1:] {
		if b == nil {
			continue
		}
		if !same(b.Top(), level) {
			break
		}
		right = b.Right()
	}
	return right
}

// rowEndBoard covers the trailing run of a row whose compartments are lower
// than some compartment to their left. The run is scanned right to left
// while tops stay at or below the top of the last compartment; the board
// spans the run at that top. A row ending in a gap, or with no taller
// compartment, needs no correction.
//
// The mirror case, a leading run lower than a compartment to its right, is
// not corrected.
func rowEndBoard(r int, row []*geom.Rect) (Board, bool) {
	var (
		end   geom.Rect
		start float64
	)
	for i := len(row) - 1; i >= 0; i-- {
		rc := row[i]
		if rc == nil {
			return Board{}, false
		}
		if i == len(row)-1 {
			end, start = *rc, rc.X
		}
		if rc.Top() > end.Top()+eps {
			return horizontal(r, start, end.Top(), end.Right()-start), true
		}
		start = rc.X
	}
	return Board{}, false
}
