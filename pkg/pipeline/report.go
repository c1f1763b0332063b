package pipeline

import (
	"github.com/matzehuels/stackshelf/pkg/boards"
	"github.com/matzehuels/stackshelf/pkg/geom"
	"github.com/matzehuels/stackshelf/pkg/layout"
)

// Report is the JSON view of a layout and its boards, shared by the CLI's
// "layout --json" output and the HTTP /layout endpoint.
type Report struct {
	Rows   []ReportRow   `json:"rows"`
	Boards []ReportBoard `json:"boards"`
	Bounds *ReportRect   `json:"bounds,omitempty"`
}

// ReportRow lists the slots of one row, bottom row first.
type ReportRow struct {
	Slots []ReportSlot `json:"slots"`
}

// ReportSlot is one slot. Gaps have neither interval nor rect.
type ReportSlot struct {
	Gap      bool            `json:"gap,omitempty"`
	Interval *ReportInterval `json:"interval,omitempty"`
	Rect     *ReportRect     `json:"rect,omitempty"`
}

// ReportInterval is a horizontal span.
type ReportInterval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ReportRect is a positioned rectangle.
type ReportRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ReportBoard is one derived board.
type ReportBoard struct {
	Kind string     `json:"kind"`
	Row  int        `json:"row"`
	Rect ReportRect `json:"rect"`
}

// NewReport builds the report for l and bs.
func NewReport(l layout.Layout, bs []boards.Board) Report {
	rep := Report{
		Rows:   make([]ReportRow, len(l.Rects)),
		Boards: make([]ReportBoard, len(bs)),
	}
	for r, row := range l.Rects {
		slots := make([]ReportSlot, len(row))
		for i, rect := range row {
			if rect == nil {
				slots[i] = ReportSlot{Gap: true}
				continue
			}
			slots[i].Rect = reportRect(*rect)
			if iv := l.Intervals[r][i]; iv != nil {
				slots[i].Interval = &ReportInterval{Start: iv.Start, End: iv.End()}
			}
		}
		rep.Rows[r] = ReportRow{Slots: slots}
	}
	for i, b := range bs {
		rep.Boards[i] = ReportBoard{Kind: b.Kind.String(), Row: b.Row, Rect: *reportRect(b.Rect)}
	}
	if bounds, ok := l.Bounds(); ok {
		rep.Bounds = reportRect(bounds)
	}
	return rep
}

func reportRect(r geom.Rect) *ReportRect {
	return &ReportRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
