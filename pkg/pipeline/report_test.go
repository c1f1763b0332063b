package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stackshelf/pkg/cache"
	"github.com/matzehuels/stackshelf/pkg/layout"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

func TestNewReportSingleCompartment(t *testing.T) {
	s := shelf.New(25, 2, 0.5)
	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33)))
	l, bs, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := Report{
		Rows: []ReportRow{{Slots: []ReportSlot{{
			Interval: &ReportInterval{Start: 0, End: 30},
			Rect:     &ReportRect{X: 0, Y: 0, Width: 30, Height: 33},
		}}}},
		Boards: []ReportBoard{
			{Kind: "backboard", Rect: ReportRect{Width: 30, Height: 33}},
			{Kind: "vertical", Rect: ReportRect{Height: 33}},
			{Kind: "vertical", Rect: ReportRect{X: 30, Height: 33}},
			{Kind: "horizontal", Rect: ReportRect{Width: 30}},
			{Kind: "horizontal", Rect: ReportRect{Y: 33, Width: 30}},
		},
		Bounds: &ReportRect{Width: 30, Height: 33},
	}
	if diff := cmp.Diff(want, NewReport(l, bs)); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReportGaps(t *testing.T) {
	l, bs, err := Build(wallShelf())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	rep := NewReport(l, bs)

	if len(rep.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(rep.Rows))
	}
	gap := rep.Rows[2].Slots[1]
	if !gap.Gap || gap.Interval != nil || gap.Rect != nil {
		t.Errorf("Rows[2].Slots[1] = %+v, want a bare gap", gap)
	}
	if len(rep.Boards) != len(bs) {
		t.Errorf("len(Boards) = %d, want %d", len(rep.Boards), len(bs))
	}

	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var back Report
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if diff := cmp.Diff(rep, back); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReportEmpty(t *testing.T) {
	rep := NewReport(layout.Layout{}, nil)
	if len(rep.Rows) != 0 || len(rep.Boards) != 0 || rep.Bounds != nil {
		t.Errorf("NewReport(empty) = %+v, want empty report", rep)
	}
}

func TestRunnerLayoutReport(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(fc, nil, nil)
	ctx := context.Background()

	first, hit, err := r.LayoutReport(ctx, wallShelf())
	if err != nil {
		t.Fatalf("LayoutReport() error: %v", err)
	}
	if hit {
		t.Error("first LayoutReport() hit the cache")
	}
	second, hit, err := r.LayoutReport(ctx, wallShelf())
	if err != nil {
		t.Fatalf("LayoutReport() error: %v", err)
	}
	if !hit {
		t.Error("second LayoutReport() missed the cache")
	}
	if string(first) != string(second) {
		t.Error("cached report differs from the computed one")
	}

	var rep Report
	if err := json.Unmarshal(first, &rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(rep.Boards) != 35 {
		t.Errorf("boards = %d, want 35", len(rep.Boards))
	}
}
