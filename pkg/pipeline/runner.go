package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackshelf/pkg/boards"
	"github.com/matzehuels/stackshelf/pkg/cache"
	shelfio "github.com/matzehuels/stackshelf/pkg/io"
	"github.com/matzehuels/stackshelf/pkg/layout"
	"github.com/matzehuels/stackshelf/pkg/observability"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Runner runs the pipeline with caching. It holds no per-run state, so one
// Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means the default keyer, a nil
// cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute lays out s and renders every requested format.
//
// A shelf without rows yields a result without artifacts.
func (r *Runner) Execute(ctx context.Context, s *shelf.Shelf, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{
		ID:        uuid.New(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("render", result.ID.String()[:8])
	opts.Logger = logger

	// Stage 1: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(s.Rows))
	l, bs, err := Build(s)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, len(bs), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Boards = bs
	result.Stats.Rows = len(s.Rows)
	result.Stats.Compartments = s.Compartments()
	result.Stats.Boards = len(bs)
	result.Warnings = s.Warnings()
	for _, w := range result.Warnings {
		logger.Warn(w)
	}

	logger.Debug("interval stack\n" + strings.TrimRight(layout.FormatIntervals(l.Intervals), "\n"))
	logger.Debug("rect stack\n" + strings.TrimRight(layout.FormatRects(l.Rects), "\n"))
	logger.Info("computed layout",
		"rows", result.Stats.Rows,
		"compartments", result.Stats.Compartments,
		"boards", result.Stats.Boards,
		"duration", result.Stats.LayoutTime)

	if len(s.Rows) == 0 {
		logger.Warn("shelf has no rows, nothing to render")
		return result, nil
	}

	data, err := shelfio.Canonical(s)
	if err != nil {
		return nil, fmt.Errorf("hash description: %w", err)
	}
	result.ShelfHash = cache.Hash(data)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, s, bs, result.ShelfHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders bs in every format of opts, serving all of
// them from the cache when possible. It reports whether the cache was hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *shelf.Shelf, bs []boards.Board, shelfHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(shelfHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache lookup failed", "format", format, "err", err)
				break
			}
			if !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderBytes(s, bs, sink.Format(format))
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", format, err)
		}
		rendered[format] = data
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(shelfHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, TTLArtifact); err != nil {
			opts.Logger.Warn("cache store failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// LayoutReport returns the JSON [Report] of s, cached under the layout key
// of the description hash. It reports whether the cache was hit. The shelf
// must have been validated.
func (r *Runner) LayoutReport(ctx context.Context, s *shelf.Shelf) ([]byte, bool, error) {
	canonical, err := shelfio.Canonical(s)
	if err != nil {
		return nil, false, fmt.Errorf("hash description: %w", err)
	}
	key := r.Keyer.LayoutKey(cache.Hash(canonical))

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache lookup failed", "key", "layout", "err", err)
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, "layout")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	l, bs, err := Build(s)
	if err != nil {
		return nil, false, err
	}
	data, err = json.Marshal(NewReport(l, bs))
	if err != nil {
		return nil, false, fmt.Errorf("encode layout: %w", err)
	}
	if err := r.Cache.Set(ctx, key, data, TTLLayout); err != nil {
		r.Logger.Warn("cache store failed", "key", "layout", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
