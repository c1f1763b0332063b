package shelf

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"github.com/matzehuels/stackshelf/pkg/errors"
)

// Validate checks the description and returns every problem found, combined
// with multierr. Use multierr.Errors to list them individually.
func (s *Shelf) Validate() error {
	var err error
	err = multierr.Append(err, errors.ValidateLength(errors.ErrCodeInvalidShelf, "depth", s.Depth))
	err = multierr.Append(err, errors.ValidateLength(errors.ErrCodeInvalidShelf, "board thickness", s.BoardThickness))
	err = multierr.Append(err, errors.ValidateLength(errors.ErrCodeInvalidShelf, "backboard thickness", s.BackboardThickness))

	for i, r := range s.Rows {
		err = multierr.Append(err, s.validateRow(i, r))
	}
	return err
}

func (s *Shelf) validateRow(index int, r Row) error {
	err := errors.ValidateOffset(errors.ErrCodeInvalidRow, rowLabel(index)+" indent", r.Indent)

	if _, ok := r.MaxHeight(); !ok {
		err = multierr.Append(err, errors.New(errors.ErrCodeInvalidRow, "%s has no compartments", rowLabel(index)))
	}

	err = multierr.Append(err, s.validateGaps(index, r))

	for j, slot := range r.Slots {
		c, ok := slot.Compartment()
		if !ok {
			continue
		}
		err = multierr.Append(err, s.validateCompartment(index, j, c))
	}
	return err
}

// validateGaps checks that every gap of row index can borrow the width of a
// spanning compartment from the row below.
func (s *Shelf) validateGaps(index int, r Row) error {
	gaps := r.Gaps()
	if gaps == 0 {
		return nil
	}
	if index == 0 {
		return errors.New(errors.ErrCodeInvalidGap, "%s slot %d: the bottom row cannot contain gaps", rowLabel(index), firstGap(r, 1))
	}
	spanning := len(s.Rows[index-1].Spanning())
	if gaps <= spanning {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidGap, "%s slot %d: gap %d has no spanning compartment in %s (found %d)",
		rowLabel(index), firstGap(r, spanning+1), spanning+1, rowLabel(index-1), spanning)
}

func (s *Shelf) validateCompartment(row, slot int, c Compartment) error {
	at := slotLabel(row, slot)
	err := multierr.Combine(
		errors.ValidateLength(errors.ErrCodeInvalidCompartment, at+" width", c.Width),
		errors.ValidateLength(errors.ErrCodeInvalidCompartment, at+" height", c.Height),
	)
	if c.VerticalSpan < 0 {
		err = multierr.Append(err, errors.New(errors.ErrCodeInvalidCompartment, "%s vertical span must not be negative, got %d", at, c.VerticalSpan))
	}
	if last := row + c.Span() - 1; last >= len(s.Rows) {
		err = multierr.Append(err, errors.New(errors.ErrCodeInvalidCompartment, "%s spans %d rows but the shelf has only %d rows from there up",
			at, c.Span(), len(s.Rows)-row))
	}
	return err
}

// Warnings lists compartments whose boards would not fit inside them: a
// height within one board thickness, or a side within the backboard inset.
// Such shelves still lay out and render.
func (s *Shelf) Warnings() []string {
	var out []string
	inset := 2 * s.BackboardIndent()
	for i, r := range s.Rows {
		for j, slot := range r.Slots {
			c, ok := slot.Compartment()
			if !ok || c.Width <= 0 || c.Height <= 0 {
				continue
			}
			at := slotLabel(i, j)
			if c.Width <= inset || c.Height <= inset {
				out = append(out, fmt.Sprintf("%s is too small for a backboard inset of %g", at, s.BackboardIndent()))
			}
			if s.BoardThickness > 0 && c.Height <= s.BoardThickness {
				out = append(out, fmt.Sprintf("%s height %g does not exceed the board thickness %g", at, c.Height, s.BoardThickness))
			}
		}
	}
	return out
}

// firstGap returns the slot index of the n-th (1-based) gap of r.
func firstGap(r Row, n int) int {
	count := 0
	for i, s := range r.Slots {
		if s.IsGap() {
			count++
			if count == n {
				return i
			}
		}
	}
	return -1
}

func rowLabel(row int) string {
	return "row " + strconv.Itoa(row)
}

func slotLabel(row, slot int) string {
	return rowLabel(row) + " slot " + strconv.Itoa(slot)
}
