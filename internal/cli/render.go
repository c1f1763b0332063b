package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	shelfio "github.com/matzehuels/stackshelf/pkg/io"
	"github.com/matzehuels/stackshelf/pkg/pipeline"
	"github.com/matzehuels/stackshelf/pkg/scene"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file or base path for several formats
	formats []string // dae, svg, json
	noCache bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formats string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <shelf.toml>",
		Short: "Render a shelf description to COLLADA, SVG or JSON",
		Long: `Render a shelf description.

The description is laid out row by row, the boards are derived and every
board is written as a box. Outputs are named after the input file unless
-o is given; with several formats each file gets its own extension.

Results are cached locally; use --refresh to rebuild them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formats)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path (default: input name)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): dae (default), svg, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")

	return cmd
}

// runRender imports the description, runs the pipeline and writes one file
// per format. Nothing is written when any stage fails.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	s, err := shelfio.Import(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Rendering "+input+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, s, pipeline.Options{
		Formats: opts.formats,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if result.Stats.Rows == 0 {
		printWarning("%s has no rows, nothing written", input)
		return nil
	}

	paths, err := writeArtifacts(basePath(opts.output, input), input, opts.formats, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d boards", result.Stats.Boards))

	printSuccess("Render complete")
	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Rows, result.Stats.Compartments, result.Stats.Boards, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Inspect the layout", appName+" layout "+input)
	return nil
}

// writeArtifacts writes each format to base plus its extension. Every file
// goes through a temp file, so a failed write leaves no partial output.
// input is never overwritten; see artifactPath.
func writeArtifacts(base, input string, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			return paths, fmt.Errorf("no %s output rendered", strings.ToUpper(f))
		}
		path := artifactPath(base, sink.Format(f), input)
		if err := scene.WriteFile(path, bytes.NewReader(data)); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// artifactPath returns base plus the format's extension, or base.boxes plus
// the extension when that would name the input description.
func artifactPath(base string, f sink.Format, input string) string {
	path := base + f.Ext()
	if samePath(path, input) {
		return base + ".boxes" + f.Ext()
	}
	return path
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
