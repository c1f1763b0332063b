package layout

import (
	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Intervals computes the horizontal interval of every slot. The result has
// one entry per row and, within it, one entry per slot; gaps are nil.
//
// Each row starts at the previous row's start plus its own indent. A gap
// advances the cursor by the width of the n-th spanning compartment of the
// row below, n being the gap's ordinal within its row.
func Intervals(rows []shelf.Row) ([][]*geom.Interval, error) {
	stack := make([][]*geom.Interval, 0, len(rows))

	var start float64
	for i, row := range rows {
		start += row.Indent

		var prev *shelf.Row
		if i > 0 {
			prev = &rows[i-1]
		}
		intervals, err := rowIntervals(i, start, row, prev)
		if err != nil {
			return nil, err
		}
		stack = append(stack, intervals)
	}
	return stack, nil
}

// rowIntervals lays out a single row starting at start. prev is the row
// below, nil for the bottom row.
func rowIntervals(index int, start float64, row shelf.Row, prev *shelf.Row) ([]*geom.Interval, error) {
	intervals := make([]*geom.Interval, len(row.Slots))
	cursor := start
	gaps := 0

	for i, slot := range row.Slots {
		if c, ok := slot.Compartment(); ok {
			intervals[i] = &geom.Interval{Start: cursor, Width: c.Width}
			cursor += c.Width
			continue
		}

		gaps++
		if prev == nil {
			return nil, errors.New(errors.ErrCodeInvalidGap, "row %d slot %d: the bottom row cannot contain gaps", index, i)
		}
		below, ok := prev.NthSpanning(gaps)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidGap, "row %d slot %d: row %d has fewer than %d spanning compartments",
				index, i, index-1, gaps)
		}
		cursor += below.Width
	}
	return intervals, nil
}
