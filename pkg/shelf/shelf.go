package shelf

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackshelf/pkg/scene"
)

// DefaultColor is the light grey every board is rendered with unless the
// description overrides it.
var DefaultColor = scene.Color{R: 0.9, G: 0.9, B: 0.9}

// Alignment controls how the compartments of the bottom row are lined up
// vertically when their heights differ.
type Alignment int

const (
	// AlignBottom rests every compartment on the shelf base.
	AlignBottom Alignment = iota
	// AlignTop lines up the tops of the compartments at the tallest one.
	AlignTop
)

// String returns the lowercase name used in description files.
func (a Alignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ParseAlignment parses "top" or "bottom" (case-insensitive). The empty
// string means bottom.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bottom":
		return AlignBottom, nil
	case "top":
		return AlignTop, nil
	default:
		return AlignBottom, fmt.Errorf("invalid alignment %q (must be 'top' or 'bottom')", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Compartment is a single storage cell.
type Compartment struct {
	Width  float64
	Height float64
	// VerticalSpan is the number of rows the compartment occupies. Zero
	// means one.
	VerticalSpan int
}

// Span returns the number of rows the compartment occupies, at least 1.
func (c Compartment) Span() int {
	if c.VerticalSpan < 1 {
		return 1
	}
	return c.VerticalSpan
}

// Spanning reports whether the compartment reaches into rows above its own.
func (c Compartment) Spanning() bool { return c.Span() > 1 }

// Slot is one position in a row: either a compartment or a gap. The zero
// Slot is a gap.
type Slot struct {
	compartment Compartment
	filled      bool
}

// Cell returns a slot holding c.
func Cell(c Compartment) Slot { return Slot{compartment: c, filled: true} }

// Gap returns an empty slot.
func Gap() Slot { return Slot{} }

// IsGap reports whether the slot is empty.
func (s Slot) IsGap() bool { return !s.filled }

// Compartment returns the slot's compartment and true, or false for a gap.
func (s Slot) Compartment() (Compartment, bool) { return s.compartment, s.filled }

// String renders the slot for debug output.
func (s Slot) String() string {
	if !s.filled {
		return "gap"
	}
	c := s.compartment
	if c.Spanning() {
		return fmt.Sprintf("%gx%g/%d", c.Width, c.Height, c.Span())
	}
	return fmt.Sprintf("%gx%g", c.Width, c.Height)
}

// Row is a horizontal tier of slots.
type Row struct {
	Alignment Alignment
	// Indent is the offset of the row's start relative to the start of the
	// previous row. For the bottom row it is relative to x = 0.
	Indent float64
	Slots  []Slot
}

// NewRow builds a row from its slots.
func NewRow(alignment Alignment, indent float64, slots ...Slot) Row {
	return Row{Alignment: alignment, Indent: indent, Slots: slots}
}

// Gaps returns the number of gap slots in the row.
func (r Row) Gaps() int {
	n := 0
	for _, s := range r.Slots {
		if s.IsGap() {
			n++
		}
	}
	return n
}

// Spanning returns the compartments of the row that span more than one row,
// in left-to-right order.
func (r Row) Spanning() []Compartment {
	var out []Compartment
	for _, s := range r.Slots {
		if c, ok := s.Compartment(); ok && c.Spanning() {
			out = append(out, c)
		}
	}
	return out
}

// NthSpanning returns the n-th (1-based) spanning compartment of the row.
func (r Row) NthSpanning(n int) (Compartment, bool) {
	count := 0
	for _, s := range r.Slots {
		if c, ok := s.Compartment(); ok && c.Spanning() {
			count++
			if count == n {
				return c, true
			}
		}
	}
	return Compartment{}, false
}

// MaxHeight returns the height of the tallest compartment, or false if the
// row holds only gaps.
func (r Row) MaxHeight() (float64, bool) {
	var (
		max   float64
		found bool
	)
	for _, s := range r.Slots {
		if c, ok := s.Compartment(); ok && (!found || c.Height > max) {
			max = c.Height
			found = true
		}
	}
	return max, found
}

// Shelf is the complete description of a shelf. It owns its rows; the
// layout is derived from them on every render.
type Shelf struct {
	Depth              float64
	BoardThickness     float64
	BackboardThickness float64
	Color              scene.Color
	Rows               []Row
}

// New creates an empty shelf with the default color.
func New(depth, boardThickness, backboardThickness float64) *Shelf {
	return &Shelf{
		Depth:              depth,
		BoardThickness:     boardThickness,
		BackboardThickness: backboardThickness,
		Color:              DefaultColor,
	}
}

// AddRow appends r on top of the rows added so far.
func (s *Shelf) AddRow(r Row) {
	s.Rows = append(s.Rows, r)
}

// BackboardIndent is the distance a backboard is inset from the edges of
// its compartment and from the back plane.
func (s *Shelf) BackboardIndent() float64 {
	return s.BackboardThickness / 4
}

// Compartments returns the number of non-gap slots over all rows.
func (s *Shelf) Compartments() int {
	n := 0
	for _, r := range s.Rows {
		n += len(r.Slots) - r.Gaps()
	}
	return n
}
