package layout

import (
	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Rects places every slot vertically using the intervals computed by
// [Intervals]. The bottom row honours its alignment; every other row rests
// each compartment on the highest rect of the row below it overlaps, falling
// back to the first rect of the row below when it overlaps none.
//
// Alignment is only meaningful for the bottom row.
func Rects(rows []shelf.Row, intervals [][]*geom.Interval) ([][]*geom.Rect, error) {
	if len(intervals) != len(rows) {
		return nil, errors.New(errors.ErrCodeInternal, "interval stack has %d rows, shelf has %d", len(intervals), len(rows))
	}

	stack := make([][]*geom.Rect, 0, len(rows))
	for i, row := range rows {
		if len(intervals[i]) != len(row.Slots) {
			return nil, errors.New(errors.ErrCodeInternal, "row %d: %d intervals for %d slots", i, len(intervals[i]), len(row.Slots))
		}
		maxHeight, ok := row.MaxHeight()
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidRow, "row %d has no compartments", i)
		}

		var rects []*geom.Rect
		if i == 0 {
			rects = baseRects(row, intervals[i], maxHeight)
		} else {
			rects = stackedRects(row, intervals[i], stack[i-1])
		}
		stack = append(stack, rects)
	}
	return stack, nil
}

// baseRects places the bottom row at y = 0 according to its alignment.
func baseRects(row shelf.Row, intervals []*geom.Interval, maxHeight float64) []*geom.Rect {
	rects := make([]*geom.Rect, len(row.Slots))
	for i, slot := range row.Slots {
		c, ok := slot.Compartment()
		if !ok {
			continue
		}
		var y float64
		if row.Alignment == shelf.AlignTop {
			y = maxHeight - c.Height
		}
		iv := intervals[i]
		rects[i] = &geom.Rect{X: iv.Start, Y: y, Width: iv.Width, Height: c.Height}
	}
	return rects
}

// stackedRects rests every compartment of row on the rects below it.
func stackedRects(row shelf.Row, intervals []*geom.Interval, below []*geom.Rect) []*geom.Rect {
	rects := make([]*geom.Rect, len(row.Slots))
	for i, slot := range row.Slots {
		c, ok := slot.Compartment()
		if !ok {
			continue
		}
		iv := intervals[i]
		rects[i] = &geom.Rect{X: iv.Start, Y: restingHeight(*iv, below), Width: iv.Width, Height: c.Height}
	}
	return rects
}

// restingHeight returns the highest top among the rects of below that
// overlap iv, or the top of the first rect of below if none overlap.
func restingHeight(iv geom.Interval, below []*geom.Rect) float64 {
	var (
		y     float64
		found bool
	)
	for _, r := range below {
		if r == nil || !iv.Overlaps(r.Span()) {
			continue
		}
		if !found || r.Top() > y {
			y = r.Top()
			found = true
		}
	}
	if found {
		return y
	}
	if first, ok := First(below); ok {
		return first.Top()
	}
	return 0
}
