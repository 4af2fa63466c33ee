package pipeline

import (
	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/render/treemap"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes the treemap for mods on the grid described by
// opts. Options must already be validated.
func GenerateLayout(mods []bundle.Module, opts Options) []treemap.Cell {
	return treemap.Layout(mods, opts.Cols, opts.Rows)
}
