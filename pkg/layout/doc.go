// Package layout computes the 2D front elevation of a shelf.
//
// # Overview
//
// Layout runs in two passes over the rows of a [shelf.Shelf], bottom row
// first:
//
//  1. [Intervals] places every slot horizontally. A running cursor starts at
//     x = 0 and moves by each row's indent to find the row's start; slots are
//     then laid out left to right. A gap advances the cursor by the width of
//     the matching spanning compartment of the row below.
//  2. [Rects] places every slot vertically. The bottom row is aligned at the
//     base (or at its tallest compartment for top alignment); every later
//     compartment rests on the highest top among the rects of the row below
//     that it overlaps.
//
// [Compute] runs both passes:
//
//	l, err := layout.Compute(s.Rows)
//	if err != nil {
//	    return err // configuration error, nothing was emitted
//	}
//	for r, row := range l.Rects {
//	    for _, rect := range row {
//	        if rect == nil {
//	            continue // gap
//	        }
//	        fmt.Println(r, rect.X, rect.Y, rect.Right(), rect.Top())
//	    }
//	}
//
// # Gaps
//
// Gap slots are kept as nil entries so that every row of the result has the
// same length as the row's slots. Consumers must skip them.
//
// # Integration
//
// The layout package sits between the description and the board deriver:
//
//	shelf.Shelf → layout.Compute → boards.Derive → scene.Scene
package layout
