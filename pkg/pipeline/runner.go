package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jpatterson933/bunx-ray/pkg/analysis"
	"github.com/jpatterson933/bunx-ray/pkg/budget"
	"github.com/jpatterson933/bunx-ray/pkg/diff"
	"github.com/jpatterson933/bunx-ray/pkg/observability"
	"github.com/jpatterson933/bunx-ray/pkg/render/treemap"
	"github.com/jpatterson933/bunx-ray/pkg/snapshot"
	"github.com/jpatterson933/bunx-ray/pkg/stats"
)

// Runner executes the pipeline against a snapshot store.
//
// The Runner is stateless except for the store and logger; it doesn't keep
// results between runs.
type Runner struct {
	Store  snapshot.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given store.
// If store is nil, a NullStore is used (trends disabled).
func NewRunner(store snapshot.Store, logger *log.Logger) *Runner {
	if store == nil {
		store = snapshot.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:  store,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline.
//
// A build over its size limits is not an error: the violations are part of
// the rendered output and reported through Result.Budget.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	path, found, err := ResolveStatsFile(opts.Dir, opts.Stats)
	if err != nil {
		return nil, err
	}
	if found {
		logger.Debug("found stats file", "path", path)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	b, err := r.Load(ctx, path, opts.Format)
	if err != nil {
		return nil, err
	}
	result.Bundle = b
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ModuleCount = len(b.Modules)
	result.Stats.ChunkCount = len(b.Chunks)

	logger.Debug("loaded stats",
		"format", b.Format,
		"modules", len(b.Modules),
		"chunks", len(b.Chunks),
		"duration", result.Stats.LoadTime)

	// Analysis
	result.Budget = budget.Check(b.Modules, opts.Limits())
	if !opts.NoDuplicates {
		result.Duplicates = analysis.FindDuplicates(b.Modules)
	}
	if opts.GroupByPackage {
		result.Packages = analysis.GroupByPackage(b.Modules)
	}
	if opts.IsText() {
		result.Trend = r.compareSnapshot(ctx, b)
	}

	// Stage 2: Layout
	cells, err := r.Layout(ctx, b, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.CellCount = len(cells)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Output)
	err = Render(result, cells, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Output, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	logger.Debug("rendered report",
		"output", opts.Output,
		"bytes", len(result.Output),
		"duration", result.Stats.RenderTime)

	if result.Budget.Failed() {
		logger.Warn("size budget exceeded",
			"modules", len(result.Budget.Modules),
			"total", result.Budget.Total != nil)
	}

	if opts.SaveSnapshot {
		if err := r.Store.Save(ctx, snapshot.New(b.Modules)); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
		result.SnapshotSaved = true
		logger.Info("saved snapshot", "path", r.Store.Path(), "modules", len(b.Modules))
	}

	return result, nil
}

// Load reads and normalizes a stats file, firing the load hooks.
func (r *Runner) Load(ctx context.Context, path string, format stats.Format) (*stats.Stats, error) {
	observability.Pipeline().OnLoadStart(ctx, path, format.String())
	start := time.Now()

	b, err := Load(path, format)

	count, detected := 0, format
	if b != nil {
		count, detected = len(b.Modules), b.Format
	}
	observability.Pipeline().OnLoadComplete(ctx, path, detected.String(), count, time.Since(start), err)
	return b, err
}

// Layout computes the treemap for text output. Other outputs have no grid
// and get nil cells.
func (r *Runner) Layout(ctx context.Context, b *stats.Stats, opts Options) ([]treemap.Cell, error) {
	if !opts.IsText() {
		return nil, nil
	}
	observability.Pipeline().OnLayoutStart(ctx, len(b.Modules), opts.Cols, opts.Rows)
	start := time.Now()
	cells := GenerateLayout(b.Modules, opts)
	observability.Pipeline().OnLayoutComplete(ctx, len(cells), time.Since(start), nil)

	r.Logger.Debug("computed layout", "cells", len(cells), "grid", fmt.Sprintf("%dx%d", opts.Cols, opts.Rows))
	return cells, nil
}

// Diff loads two stats files and compares their modules.
func (r *Runner) Diff(ctx context.Context, oldPath, newPath string, format stats.Format) (diff.Result, error) {
	oldBundle, err := r.Load(ctx, oldPath, format)
	if err != nil {
		return diff.Result{}, err
	}
	newBundle, err := r.Load(ctx, newPath, format)
	if err != nil {
		return diff.Result{}, err
	}
	res := diff.Compare(oldBundle.Modules, newBundle.Modules)
	r.Logger.Debug("compared builds",
		"changed", len(res.Changed),
		"added", len(res.Added),
		"removed", len(res.Removed))
	return res, nil
}

// compareSnapshot returns the trend against the stored snapshot, or nil when
// there is none. A snapshot that cannot be read is logged and skipped.
func (r *Runner) compareSnapshot(ctx context.Context, b *stats.Stats) *snapshot.Comparison {
	snap, found, err := r.Store.Load(ctx)
	if err != nil {
		r.Logger.Warn("ignoring unreadable snapshot", "path", r.Store.Path(), "error", err)
		return nil
	}
	if !found {
		return nil
	}
	c := snapshot.Compare(b.Modules, snap)
	return &c
}

// Close releases resources held by the runner (primarily the store).
func (r *Runner) Close() error {
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
