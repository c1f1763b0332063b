// Package cli implements the stackshelf command-line interface.
//
// The CLI reads shelf descriptions (TOML, YAML or JSON), runs them through
// the layout and render pipeline and writes the resulting files. It is built
// on cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Write COLLADA, SVG or JSON files for a description
//   - layout: Print the interval and rect stacks and the derived boards
//   - validate: Report every problem in a description
//   - convert: Rewrite a description as TOML, YAML or JSON
//   - serve: Run the HTTP render service
//   - cache: Manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// a dump of the computed interval and rect stacks.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// rounded to the millisecond. Example output: "Rendered 35 boards (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
