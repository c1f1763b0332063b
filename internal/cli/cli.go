// Package cli implements the stackshelf command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshelf/pkg/buildinfo"
	"github.com/matzehuels/stackshelf/pkg/cache"
	"github.com/matzehuels/stackshelf/pkg/pipeline"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "stackshelf"

	// defaultAddr is where "serve" listens unless --addr is given.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Stackshelf lays out shelving compartments and builds their boards",
		Long: `Stackshelf reads a row/compartment description of a shelf, stacks the rows
on top of each other and derives the vertical boards, horizontal boards and
backboards that hold them together. The boards are written as 3D boxes
(COLLADA), as a front elevation (SVG) or as a plain box list (JSON).`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newServerRunner creates the runner for "serve". With a redis address the
// cache is shared and its keys are scoped to the application; otherwise the
// local file cache is used.
func (c *CLI) newServerRunner(ctx context.Context, redisAddr string, noCache bool) (*pipeline.Runner, error) {
	if redisAddr == "" || noCache {
		return c.newRunner(noCache)
	}
	c.Logger.Info("using redis cache", "addr", redisAddr)
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, appName+":"), c.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/stackshelf/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// basePath derives the output path without extension. An empty output uses
// the input file name; a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice. Known
// aliases are normalized; unknown names are kept for the pipeline to reject.
func parseFormats(s string) []string {
	if s == "" {
		return append([]string(nil), pipeline.DefaultFormats...)
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if format, err := sink.ParseFormat(f); err == nil {
			f = string(format)
		}
		out = append(out, f)
	}
	return out
}
