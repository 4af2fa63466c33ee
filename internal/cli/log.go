package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jpatterson933/bunx-ray/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// =============================================================================
// Observability Hooks
// =============================================================================

// RegisterHooks routes pipeline and snapshot events to the CLI logger at
// debug level, so --verbose shows per-stage timings.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetSnapshotHooks(h)
}

// logHooks implements both hook interfaces on top of a logger.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.SnapshotHooks = (*logHooks)(nil)
)

func (h *logHooks) OnLoadStart(_ context.Context, path, format string) {
	h.logger.Debug("loading stats", "path", path, "format", format)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path, format string, modules int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("loaded stats", "path", path, "format", format, "modules", modules, "duration", round(d))
}

func (h *logHooks) OnLayoutStart(_ context.Context, modules, cols, rows int) {
	h.logger.Debug("computing layout", "modules", modules, "cols", cols, "rows", rows)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, cells int, d time.Duration, _ error) {
	h.logger.Debug("layout done", "cells", cells, "duration", round(d))
}

func (h *logHooks) OnRenderStart(_ context.Context, output string) {
	h.logger.Debug("rendering", "output", output)
}

func (h *logHooks) OnRenderComplete(_ context.Context, output string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "output", output, "error", err)
		return
	}
	h.logger.Debug("render done", "output", output, "duration", round(d))
}

func (h *logHooks) OnSnapshotLoad(_ context.Context, path string, found bool, err error) {
	h.logger.Debug("snapshot load", "path", path, "found", found, "error", err)
}

func (h *logHooks) OnSnapshotSave(_ context.Context, path string, modules int, err error) {
	h.logger.Debug("snapshot save", "path", path, "modules", modules, "error", err)
}

// round trims durations to microseconds for readable log lines.
func round(d time.Duration) time.Duration {
	return d.Round(time.Microsecond)
}
