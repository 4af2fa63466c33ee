// Package bundle defines the records shared by every bunx-ray component.
//
// A [Module] is a single bundled source file with its byte size, as produced
// by the stat-file normalizers in pkg/stats. Everything downstream (the
// treemap layout, the grid rasterizer, budget checks, diffs and snapshots)
// consumes plain []Module slices and never mutates them.
//
// The package also carries the small formatting helpers used by the text
// renderers: [FormatSize] for human-readable byte counts and the rune-aware
// [TruncateLeft], [PadRight] and [PadLeft] used for fixed-width tables.
package bundle
