// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline stages and snapshot history access.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so library packages stay
// free of import cycles and backend dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetSnapshotHooks(&mySnapshotHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path, format)
//	// ... read and normalize ...
//	observability.Pipeline().OnLoadComplete(ctx, path, format, len(mods), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the heat map pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path, format string)
	OnLoadComplete(ctx context.Context, path, format string, moduleCount int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, moduleCount, cols, rows int)
	OnLayoutComplete(ctx context.Context, cellCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, output string)
	OnRenderComplete(ctx context.Context, output string, duration time.Duration, err error)
}

// =============================================================================
// Snapshot Hooks
// =============================================================================

// SnapshotHooks receives events from snapshot history access.
type SnapshotHooks interface {
	// OnSnapshotLoad records a history read. found is false when no
	// snapshot exists yet.
	OnSnapshotLoad(ctx context.Context, path string, found bool, err error)

	// OnSnapshotSave records a history write.
	OnSnapshotSave(ctx context.Context, path string, moduleCount int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int, int)                   {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// NoopSnapshotHooks is a no-op implementation of SnapshotHooks.
type NoopSnapshotHooks struct{}

func (NoopSnapshotHooks) OnSnapshotLoad(context.Context, string, bool, error) {}
func (NoopSnapshotHooks) OnSnapshotSave(context.Context, string, int, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	snapshotHooks SnapshotHooks = NoopSnapshotHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetSnapshotHooks registers custom snapshot hooks.
func SetSnapshotHooks(h SnapshotHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		snapshotHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Snapshot returns the registered snapshot hooks.
func Snapshot() SnapshotHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return snapshotHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	snapshotHooks = NoopSnapshotHooks{}
}
