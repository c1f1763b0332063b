// Package pipeline turns a shelf description into rendered files.
//
// The pipeline has two stages:
//
//  1. Layout: validate the description, compute the interval and rect
//     stacks and derive the boards ([Build])
//  2. Render: emit one box per board into a scene and serialize it
//     ([Render] for a caller-supplied scene, [RenderBytes] for a format)
//
// [Runner] runs both stages for several formats at once and caches the
// rendered artifacts, keyed by the hash of the canonical description. The
// CLI and the HTTP service both go through it:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, s, pipeline.Options{Formats: []string{"dae", "svg"}})
//	if err != nil {
//	    return err
//	}
//	dae := result.Artifacts["dae"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackshelf/pkg/boards"
	"github.com/matzehuels/stackshelf/pkg/cache"
	"github.com/matzehuels/stackshelf/pkg/errors"
	"github.com/matzehuels/stackshelf/pkg/layout"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultFormats are rendered when no format is requested.
var DefaultFormats = []string{string(sink.FormatCollada)}

// Cache lifetimes.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a [Runner.Execute] call.
type Options struct {
	// Formats lists the output formats to render: dae, svg or json.
	Formats []string `json:"formats,omitempty"`
	// Refresh skips the cache lookup; results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the run in logs and HTTP responses.
	ID uuid.UUID

	// ShelfHash is the hash of the canonical description.
	ShelfHash string

	Layout layout.Layout
	Boards []boards.Board

	// Warnings lists compartments too small for their boards. They do not
	// stop the render.
	Warnings []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	Compartments int
	Boards       int
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(sink.Formats, sink.Format(format)) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dae, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the formats, drops duplicates and applies
// defaults. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}
