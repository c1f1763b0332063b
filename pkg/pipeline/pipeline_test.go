package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/stackshelf/pkg/cache"
	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/scene"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

func cell(w, h float64) shelf.Slot { return shelf.Cell(shelf.Compartment{Width: w, Height: h}) }

func wallShelf() *shelf.Shelf {
	s := shelf.New(25, 2.5, 0.5)
	s.AddRow(shelf.NewRow(shelf.AlignTop, 80, cell(30, 33), cell(77, 25)))
	s.AddRow(shelf.NewRow(shelf.AlignBottom, -65, cell(55, 32), cell(27, 32),
		shelf.Cell(shelf.Compartment{Width: 30, Height: 57, VerticalSpan: 2}), cell(100, 25)))
	s.AddRow(shelf.NewRow(shelf.AlignBottom, -18, cell(100, 25), shelf.Gap(), cell(27, 32), cell(55, 25)))
	s.AddRow(shelf.NewRow(shelf.AlignBottom, 60, cell(30, 33), cell(55, 25)))
	return s
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dae", false},
		{"svg", false},
		{"json", false},
		{"png", true},
		{"DAE", true}, // case-sensitive
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if diff := cmp.Diff([]string{"dae"}, o.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	o = Options{Formats: []string{"svg", "dae", "svg"}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if diff := cmp.Diff([]string{"svg", "dae"}, o.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}

	o = Options{Formats: []string{"obj"}}
	if err := o.ValidateAndSetDefaults(); err == nil {
		t.Error("ValidateAndSetDefaults() with unknown format expected error")
	}
}

func TestRenderZeroRows(t *testing.T) {
	rec := scene.NewRecorder()
	if err := Render(shelf.New(25, 2.5, 0.5), rec, "out.dae"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if rec.Calls() != 0 {
		t.Errorf("scene received %d calls, want 0", rec.Calls())
	}
}

func TestRenderSingleCompartment(t *testing.T) {
	s := shelf.New(25, 2.5, 0.5)
	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0, cell(30, 33)))
	rec := scene.NewRecorder()

	if err := Render(s, rec, "out.dae"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := len(rec.Materials); got != 1 {
		t.Errorf("materials = %d, want 1", got)
	}
	if got := rec.Materials[0].Diffuse; got != shelf.DefaultColor {
		t.Errorf("diffuse = %v, want %v", got, shelf.DefaultColor)
	}
	if got := len(rec.Nodes); got != 5 {
		t.Errorf("boxes = %d, want 5", got)
	}
	if diff := cmp.Diff([]string{"out.dae"}, rec.Written); diff != "" {
		t.Errorf("Written mismatch (-want +got):\n%s", diff)
	}
	// one material, five boxes, one write
	if rec.Calls() != 7 {
		t.Errorf("Calls() = %d, want 7", rec.Calls())
	}
}

func TestRenderWallShelf(t *testing.T) {
	rec := scene.NewRecorder()
	if err := Render(wallShelf(), rec, "wall.dae"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := len(rec.Nodes); got != 35 {
		t.Errorf("boxes = %d, want 35", got)
	}
	for _, n := range rec.Nodes {
		if n.Box.Size.X <= 0 || n.Box.Size.Y <= 0 || n.Box.Size.Z <= 0 {
			t.Errorf("%s has a non-positive size %+v", n.ID, n.Box.Size)
		}
	}
}

func TestRenderErrorsEmitNothing(t *testing.T) {
	tests := []struct {
		name string
		rows []shelf.Row
		code errors.Code
	}{
		{
			name: "gap in bottom row",
			rows: []shelf.Row{shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(10, 10))},
			code: errors.ErrCodeInvalidGap,
		},
		{
			name: "gap without spanning compartment",
			rows: []shelf.Row{
				shelf.NewRow(shelf.AlignBottom, 0, cell(10, 10)),
				shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap(), cell(10, 10)),
			},
			code: errors.ErrCodeInvalidGap,
		},
		{
			name: "row of gaps",
			rows: []shelf.Row{
				shelf.NewRow(shelf.AlignBottom, 0, shelf.Cell(shelf.Compartment{Width: 10, Height: 10, VerticalSpan: 2})),
				shelf.NewRow(shelf.AlignBottom, 0, shelf.Gap()),
			},
			code: errors.ErrCodeInvalidRow,
		},
		{
			name: "negative width",
			rows: []shelf.Row{shelf.NewRow(shelf.AlignBottom, 0, cell(-1, 10))},
			code: errors.ErrCodeInvalidCompartment,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shelf.New(25, 2.5, 0.5)
			for _, r := range tt.rows {
				s.AddRow(r)
			}
			rec := scene.NewRecorder()
			err := Render(s, rec, "out.dae")
			if err == nil {
				t.Fatal("Render() expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Render() error = %v, want code %s", err, tt.code)
			}
			if rec.Calls() != 0 {
				t.Errorf("scene received %d calls, want 0", rec.Calls())
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := wallShelf()
	a, b := scene.NewRecorder(), scene.NewRecorder()
	if err := Render(s, a, "a"); err != nil {
		t.Fatal(err)
	}
	if err := Render(s, b, "b"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Nodes, b.Nodes); diff != "" {
		t.Errorf("second render differs (-first +second):\n%s", diff)
	}
}

func TestRenderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.dae")
	c := sink.NewCollada()
	if err := Render(wallShelf(), c, path); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if diff := cmp.Diff([]string{path}, c.Written); diff != "" {
		t.Errorf("Written mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Formats: []string{"dae", "svg", "json"}}
	first, err := r.Execute(ctx, wallShelf(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("ID should be set")
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if got := len(first.Artifacts); got != 3 {
		t.Errorf("artifacts = %d, want 3", got)
	}
	if first.Stats.Boards != 35 || first.Stats.Rows != 4 || first.Stats.Compartments != 11 {
		t.Errorf("Stats = %+v, want 35 boards, 4 rows, 11 compartments", first.Stats)
	}

	second, err := r.Execute(ctx, wallShelf(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if first.ID == second.ID {
		t.Error("every run should get its own ID")
	}
	if first.ShelfHash != second.ShelfHash {
		t.Error("ShelfHash should be stable")
	}
	if diff := cmp.Diff(first.Artifacts, second.Artifacts); diff != "" {
		t.Errorf("cached artifacts differ (-first +second):\n%s", diff)
	}

	refreshed, err := r.Execute(ctx, wallShelf(), Options{Formats: opts.Formats, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerExecutePartialCacheRendersAll(t *testing.T) {
	ctx := context.Background()
	fc, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(fc, nil, nil)

	if _, err := r.Execute(ctx, wallShelf(), Options{Formats: []string{"json"}}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(ctx, wallShelf(), Options{Formats: []string{"json", "svg"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.RenderHit {
		t.Error("missing svg should count as a miss")
	}
	if len(res.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(res.Artifacts))
	}
}

func TestRunnerExecuteZeroRows(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), shelf.New(25, 2.5, 0.5), Options{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(res.Artifacts) != 0 {
		t.Errorf("artifacts = %d, want 0", len(res.Artifacts))
	}
}

func TestRunnerExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	if _, err := r.Execute(ctx, wallShelf(), Options{Formats: []string{"png"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Execute(png) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}

	s := shelf.New(0, 2.5, 0.5)
	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0, cell(10, 10)))
	if _, err := r.Execute(ctx, s, Options{}); !errors.Is(err, errors.ErrCodeInvalidShelf) {
		t.Errorf("Execute(depth 0) error = %v, want %s", err, errors.ErrCodeInvalidShelf)
	}
}

func TestRunnerExecuteSmallCompartmentWarns(t *testing.T) {
	s := shelf.New(25, 2.5, 0.5)
	s.AddRow(shelf.NewRow(shelf.AlignBottom, 0, cell(30, 40), cell(30, 2)))

	r := NewRunner(cache.NewNullCache(), nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), s, Options{Formats: []string{"json"}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(result.Artifacts["json"]) == 0 {
		t.Error("json artifact should be rendered")
	}
	want := []string{"row 0 slot 1 height 2 does not exceed the board thickness 2.5"}
	if diff := cmp.Diff(want, result.Warnings); diff != "" {
		t.Errorf("Warnings mismatch (-want +got):\n%s", diff)
	}
}
