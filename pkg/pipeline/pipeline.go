// Package pipeline provides the load → layout → render pipeline for bunx-ray.
//
// This package implements the complete pipeline that both the report command
// and the diff command use, so that every entry point applies the same
// defaults and validation.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a stats file and normalize it into modules and chunks
//  2. Layout: Compute the squarified treemap for the terminal grid
//  3. Render: Produce the text, Markdown or JSON report
//
// Around those stages the runner checks size budgets, looks for duplicate
// packages, groups modules by package and compares against the last saved
// snapshot.
//
// # Usage
//
//	runner := pipeline.NewRunner(store, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Stats: "dist/stats.json",
//	    Cols:  120,
//	    Rows:  30,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Output)
//	if result.Budget.Failed() {
//	    os.Exit(1)
//	}
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jpatterson933/bunx-ray/pkg/analysis"
	"github.com/jpatterson933/bunx-ray/pkg/budget"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
	"github.com/jpatterson933/bunx-ray/pkg/report"
	"github.com/jpatterson933/bunx-ray/pkg/snapshot"
	"github.com/jpatterson933/bunx-ray/pkg/stats"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultTop is the number of modules listed in the top-modules table.
	DefaultTop = 10

	// DefaultCols is the grid width used when the terminal size is unknown.
	DefaultCols = 80

	// DefaultRows is the grid height used when the terminal size is unknown.
	DefaultRows = 24

	// MaxTerminalRows caps the grid height taken from the terminal so the
	// table below the grid stays on screen.
	MaxTerminalRows = 40
)

// Output formats.
const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
)

// ValidOutputs is the set of supported output formats.
var ValidOutputs = map[string]bool{
	OutputText:     true,
	OutputMarkdown: true,
	OutputJSON:     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a report run.
type Options struct {
	// Load options
	Stats  string       `json:"stats,omitempty"` // Stats file; searched for when empty
	Dir    string       `json:"dir,omitempty"`   // Directory searched when Stats is empty
	Format stats.Format `json:"format,omitempty"`

	// Layout options
	Cols int `json:"cols,omitempty"`
	Rows int `json:"rows,omitempty"`

	// Render options
	Output         string `json:"output,omitempty"`
	Top            int    `json:"top,omitempty"`
	NoLegend       bool   `json:"no_legend,omitempty"`
	NoSummary      bool   `json:"no_summary,omitempty"`
	GridOnly       bool   `json:"grid_only,omitempty"`
	Color          bool   `json:"color,omitempty"`
	Labels         bool   `json:"labels,omitempty"`
	NoBorders      bool   `json:"no_borders,omitempty"`
	NoDuplicates   bool   `json:"no_duplicates,omitempty"`
	GroupByPackage bool   `json:"group_by_package,omitempty"`

	// Budget options
	Size      string `json:"size,omitempty"`
	TotalSize string `json:"total_size,omitempty"`

	// Snapshot options
	SaveSnapshot bool `json:"save_snapshot,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	limits    budget.Limits
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Bundle is the loaded stats file.
	Bundle *stats.Stats

	// Output is the rendered report in the requested format.
	Output []byte

	// Report holds the individual text sections. Only set for text output.
	Report *report.Report

	// Budget holds size limit violations. Check Budget.Failed after
	// printing Output.
	Budget budget.Result

	Duplicates []analysis.DuplicateGroup
	Packages   []analysis.Package

	// Trend compares the bundle against the stored snapshot. Nil when no
	// snapshot exists or the output is not text.
	Trend *snapshot.Comparison

	// SnapshotSaved is true when the bundle was written to the store.
	SnapshotSaved bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ModuleCount int
	ChunkCount  int
	CellCount   int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateOutput checks that an output format is valid.
func ValidateOutput(output string) error {
	if !ValidOutputs[output] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid output: %q (must be one of: text, markdown, json)", output)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks option values and applies defaults. A zero
// Top, Cols or Rows selects the default. The method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Output == "" {
		o.Output = OutputText
	}
	if err := ValidateOutput(o.Output); err != nil {
		return err
	}
	if !slices.Contains(append(stats.Formats(), stats.FormatAuto), o.Format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown stats format %q", string(o.Format))
	}

	if o.Top == 0 {
		o.Top = DefaultTop
	}
	if err := errors.ValidateTop(o.Top); err != nil {
		return err
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if err := errors.ValidateDimensions(o.Cols, o.Rows); err != nil {
		return err
	}

	limits, err := budget.ParseLimits(o.Size, o.TotalSize)
	if err != nil {
		return err
	}
	o.limits = limits

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ReportOptions returns the terminal report settings implied by o.
func (o *Options) ReportOptions() report.Options {
	return report.Options{
		Cols:       o.Cols,
		Rows:       o.Rows,
		Top:        o.Top,
		Legend:     !o.NoLegend && !o.GridOnly,
		Summary:    !o.NoSummary && !o.GridOnly,
		Color:      o.Color,
		Labels:     o.Labels,
		Borders:    !o.NoBorders,
		Duplicates: !o.NoDuplicates,
	}
}

// IsText reports whether o renders the terminal report.
func (o *Options) IsText() bool {
	return o.Output == "" || o.Output == OutputText
}

// Limits returns the parsed size limits. It is only meaningful after
// ValidateAndSetDefaults.
func (o *Options) Limits() budget.Limits {
	return o.limits
}
