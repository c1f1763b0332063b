// Package shelf defines the declarative description of a shelf: rows of
// compartments and gaps, plus the physical dimensions of the boards.
//
// # Model
//
// A [Shelf] owns an ordered list of [Row] values. Row 0 is the bottom row and
// the layout baseline; every later row is stacked on top of the one appended
// before it. Each row holds a sequence of [Slot] values, each either a
// [Compartment] or a gap:
//
//	s := shelf.New(25, 2.5, 0.5)
//	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0,
//	    shelf.Cell(shelf.Compartment{Width: 30, Height: 33}),
//	    shelf.Cell(shelf.Compartment{Width: 25, Height: 57, VerticalSpan: 2}),
//	))
//	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0,
//	    shelf.Cell(shelf.Compartment{Width: 30, Height: 20}),
//	    shelf.Gap(),
//	))
//
// # Gaps
//
// A gap reserves the horizontal footprint of a compartment from the row below
// that spans more than one row. The n-th gap of a row borrows the width of the
// n-th spanning compartment of the previous row, so the bottom row can never
// contain a gap.
//
// # Validation
//
// [Shelf.Validate] checks the whole description up front and reports every
// problem at once, each naming the offending row and slot. The layout packages
// assume a validated shelf but still fail cleanly on the configuration errors
// they can detect themselves.
package shelf
