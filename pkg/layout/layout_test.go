package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

func cell(w, h float64) shelf.Slot { return shelf.Cell(shelf.Compartment{Width: w, Height: h}) }

func span(w, h float64, n int) shelf.Slot {
	return shelf.Cell(shelf.Compartment{Width: w, Height: h, VerticalSpan: n})
}

func wallShelfRows() []shelf.Row {
	return []shelf.Row{
		shelf.NewRow(shelf.AlignTop, 80, cell(30, 33), cell(77, 25)),
		shelf.NewRow(shelf.AlignBottom, -65, cell(55, 32), cell(27, 32), span(30, 57, 2), cell(100, 25)),
		shelf.NewRow(shelf.AlignBottom, -18, cell(100, 25), shelf.Gap(), cell(27, 32), cell(55, 25)),
		shelf.NewRow(shelf.AlignBottom, 60, cell(30, 33), cell(55, 25)),
	}
}

func iv(start, width float64) *geom.Interval { return &geom.Interval{Start: start, Width: width} }

func rect(x, y, w, h float64) *geom.Rect { return &geom.Rect{X: x, Y: y, Width: w, Height: h} }

func TestIntervalsWallShelf(t *testing.T) {
	got, err := Intervals(wallShelfRows())
	if err != nil {
		t.Fatalf("Intervals() error: %v", err)
	}

	want := [][]*geom.Interval{
		{iv(80, 30), iv(110, 77)},
		{iv(15, 55), iv(70, 27), iv(97, 30), iv(127, 100)},
		{iv(-3, 100), nil, iv(127, 27), iv(154, 55)},
		{iv(57, 30), iv(87, 55)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Intervals() mismatch (-want +got):\n%s", diff)
	}
}

func TestIntervalsGapBorrowsNthSpanning(t *testing.T) {
	rows := []shelf.Row{
		shelf.NewRow(shelf.AlignBottom, 0, span(10, 50, 2), cell(5, 20), span(40, 50, 2)),
		shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(5, 20), shelf.Gap(), cell(7, 20)),
	}

	got, err := Intervals(rows)
	if err != nil {
		t.Fatalf("Intervals() error: %v", err)
	}
	want := []*geom.Interval{nil, iv(10, 5), nil, iv(55, 7)}
	if diff := cmp.Diff(want, got[1]); diff != "" {
		t.Errorf("row 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestIntervalsErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []shelf.Row
		wantMsg string
	}{
		{
			name: "gap in bottom row",
			rows: []shelf.Row{
				shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33), shelf.Gap()),
			},
			wantMsg: "row 0 slot 1",
		},
		{
			name: "no spanning compartment below",
			rows: []shelf.Row{
				shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33)),
				shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(20, 20)),
			},
			wantMsg: "row 1 slot 0",
		},
		{
			name: "second gap without second span",
			rows: []shelf.Row{
				shelf.NewRow(shelf.AlignBottom, 0, span(30, 60, 2), cell(20, 20)),
				shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(20, 20), shelf.Gap()),
			},
			wantMsg: "fewer than 2 spanning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Intervals(tt.rows)
			if err == nil {
				t.Fatal("Intervals() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidGap) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGap)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRectsWallShelf(t *testing.T) {
	l, err := Compute(wallShelfRows())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	want := [][]*geom.Rect{
		{rect(80, 0, 30, 33), rect(110, 8, 77, 25)},
		{rect(15, 33, 55, 32), rect(70, 33, 27, 32), rect(97, 33, 30, 57), rect(127, 33, 100, 25)},
		{rect(-3, 65, 100, 25), nil, rect(127, 58, 27, 32), rect(154, 58, 55, 25)},
		{rect(57, 90, 30, 33), rect(87, 90, 55, 25)},
	}
	if diff := cmp.Diff(want, l.Rects); diff != "" {
		t.Errorf("Rects mismatch (-want +got):\n%s", diff)
	}
}

func TestRectsSingleRow(t *testing.T) {
	rows := []shelf.Row{shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33))}

	l, err := Compute(rows)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	want := [][]*geom.Rect{{rect(0, 0, 30, 33)}}
	if diff := cmp.Diff(want, l.Rects); diff != "" {
		t.Errorf("Rects mismatch (-want +got):\n%s", diff)
	}
}

func TestRectsAlignment(t *testing.T) {
	tests := []struct {
		name      string
		alignment shelf.Alignment
		want      []*geom.Rect
	}{
		{
			name:      "bottom",
			alignment: shelf.AlignBottom,
			want:      []*geom.Rect{rect(0, 0, 30, 33), rect(30, 0, 20, 25)},
		},
		{
			name:      "top",
			alignment: shelf.AlignTop,
			want:      []*geom.Rect{rect(0, 0, 30, 33), rect(30, 8, 20, 25)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []shelf.Row{shelf.NewRow(tt.alignment, 0, cell(30, 33), cell(20, 25))}
			l, err := Compute(rows)
			if err != nil {
				t.Fatalf("Compute() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, l.Rects[0]); diff != "" {
				t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRectsGapBorrowsSpanningWidth(t *testing.T) {
	rows := []shelf.Row{
		shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33), span(25, 25, 2)),
		shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(20, 20)),
	}

	l, err := Compute(rows)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	// The gap reserves the 25 wide spanning compartment, so the next slot
	// starts at 25 and rests on the 33 high compartment it overlaps.
	want := []*geom.Rect{nil, rect(25, 33, 20, 20)}
	if diff := cmp.Diff(want, l.Rects[1]); diff != "" {
		t.Errorf("row 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestRectsNoOverlapFallsBackToFirstRect(t *testing.T) {
	rows := []shelf.Row{
		shelf.NewRow(shelf.AlignTop, 0, cell(30, 40), cell(30, 20)),
		shelf.NewRow(shelf.AlignBottom, 100, cell(20, 20)),
	}

	l, err := Compute(rows)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if got := l.Rects[1][0].Y; got != 40 {
		t.Errorf("Y = %v, want 40 (top of the first rect below)", got)
	}
}

func TestRectsRowOfGaps(t *testing.T) {
	rows := []shelf.Row{
		shelf.NewRow(shelf.AlignBottom, 0, span(30, 60, 2)),
		shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap()),
	}

	_, err := Compute(rows)
	if !errors.Is(err, errors.ErrCodeInvalidRow) {
		t.Errorf("Compute() error = %v, want %v", err, errors.ErrCodeInvalidRow)
	}
}

func TestRectsMismatchedStack(t *testing.T) {
	rows := wallShelfRows()
	intervals, err := Intervals(rows[:2])
	if err != nil {
		t.Fatalf("Intervals() error: %v", err)
	}
	if _, err := Rects(rows, intervals); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Rects() error = %v, want %v", err, errors.ErrCodeInternal)
	}
}

func TestLayoutProperties(t *testing.T) {
	rows := wallShelfRows()
	l, err := Compute(rows)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	for r, row := range l.Rects {
		if len(row) != len(rows[r].Slots) {
			t.Fatalf("row %d: %d rects for %d slots", r, len(row), len(rows[r].Slots))
		}

		var prev *geom.Rect
		for i, rc := range row {
			if (rc == nil) != rows[r].Slots[i].IsGap() {
				t.Errorf("row %d slot %d: rect nil = %v, gap = %v", r, i, rc == nil, rows[r].Slots[i].IsGap())
			}
			if rc == nil {
				continue
			}
			if prev != nil && rc.X < prev.Right() {
				t.Errorf("row %d slot %d starts at %v before previous right edge %v", r, i, rc.X, prev.Right())
			}
			prev = rc

			if r == 0 {
				continue
			}
			for _, below := range l.Rects[r-1] {
				if below != nil && rc.Span().Overlaps(below.Span()) && rc.Y < below.Top() {
					t.Errorf("row %d slot %d at y=%v interpenetrates rect below with top %v", r, i, rc.Y, below.Top())
				}
			}
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	rows := wallShelfRows()
	a, err := Compute(rows)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	b, err := Compute(rows)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("second Compute() differs (-first +second):\n%s", diff)
	}
}

func TestBounds(t *testing.T) {
	l, err := Compute(wallShelfRows())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	got, ok := l.Bounds()
	if !ok {
		t.Fatal("Bounds() = false, want true")
	}
	want := geom.Rect{X: -3, Y: 0, Width: 230, Height: 123}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	if _, ok := (Layout{}).Bounds(); ok {
		t.Error("Bounds() of an empty layout should report false")
	}
}

func TestFirst(t *testing.T) {
	row := []*geom.Rect{nil, rect(10, 0, 5, 5), rect(15, 0, 5, 5), nil}

	first, ok := First(row)
	if !ok || first.X != 10 {
		t.Errorf("First() = %+v, %v, want x=10", first, ok)
	}
	if _, ok := First([]*geom.Rect{nil}); ok {
		t.Error("First() of all gaps should report false")
	}
	if _, ok := First(nil); ok {
		t.Error("First() of nil should report false")
	}
}

func TestFormat(t *testing.T) {
	l, err := Compute([]shelf.Row{
		shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33), span(25, 25, 2)),
		shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(20, 20)),
	})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	wantIntervals := "[0 - 30, 30 - 55]\n[gap, 25 - 45]\n"
	if got := FormatIntervals(l.Intervals); got != wantIntervals {
		t.Errorf("FormatIntervals() = %q, want %q", got, wantIntervals)
	}
	wantRects := "[x=0 y=0 r=30 t=33, x=30 y=0 r=55 t=25]\n[gap, x=25 y=33 r=45 t=53]\n"
	if got := FormatRects(l.Rects); got != wantRects {
		t.Errorf("FormatRects() = %q, want %q", got, wantRects)
	}
}
