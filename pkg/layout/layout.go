package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Layout holds both passes of the computation. Intervals[r][i] and
// Rects[r][i] belong to slot i of row r; gaps are nil.
type Layout struct {
	Intervals [][]*geom.Interval
	Rects     [][]*geom.Rect
}

// Compute lays out rows. It fails on the first configuration error and
// returns an empty Layout in that case.
func Compute(rows []shelf.Row) (Layout, error) {
	intervals, err := Intervals(rows)
	if err != nil {
		return Layout{}, err
	}
	rects, err := Rects(rows, intervals)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Intervals: intervals, Rects: rects}, nil
}

// Rows returns the number of rows in the layout.
func (l Layout) Rows() int { return len(l.Rects) }

// Bounds returns the smallest rect containing every compartment, or false if
// the layout is empty.
func (l Layout) Bounds() (geom.Rect, bool) {
	var (
		minX, minY, maxX, maxY float64
		found                  bool
	)
	for _, row := range l.Rects {
		for _, r := range row {
			if r == nil {
				continue
			}
			if !found {
				minX, minY, maxX, maxY = r.X, r.Y, r.Right(), r.Top()
				found = true
				continue
			}
			minX, minY = min(minX, r.X), min(minY, r.Y)
			maxX, maxY = max(maxX, r.Right()), max(maxY, r.Top())
		}
	}
	if !found {
		return geom.Rect{}, false
	}
	return geom.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// First returns the leftmost non-gap rect of row.
func First(row []*geom.Rect) (geom.Rect, bool) {
	for _, r := range row {
		if r != nil {
			return *r, true
		}
	}
	return geom.Rect{}, false
}

// FormatIntervals renders the interval stack one row per line, as
// "start - end" entries or "gap".
func FormatIntervals(stack [][]*geom.Interval) string {
	var b strings.Builder
	for _, row := range stack {
		parts := make([]string, len(row))
		for i, iv := range row {
			if iv == nil {
				parts[i] = "gap"
				continue
			}
			parts[i] = fmt.Sprintf("%g - %g", iv.Start, iv.End())
		}
		fmt.Fprintf(&b, "[%s]\n", strings.Join(parts, ", "))
	}
	return b.String()
}

// FormatRects renders the rect stack one row per line.
func FormatRects(stack [][]*geom.Rect) string {
	var b strings.Builder
	for _, row := range stack {
		parts := make([]string, len(row))
		for i, r := range row {
			if r == nil {
				parts[i] = "gap"
				continue
			}
			parts[i] = fmt.Sprintf("x=%g y=%g r=%g t=%g", r.X, r.Y, r.Right(), r.Top())
		}
		fmt.Fprintf(&b, "[%s]\n", strings.Join(parts, ", "))
	}
	return b.String()
}
