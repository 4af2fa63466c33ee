// Package pkg provides the core libraries for bunx-ray bundle analysis.
//
// # Overview
//
// bunx-ray turns a bundler's stats file into an ASCII heat map: every module
// becomes a rectangle whose area is proportional to its size, shaded from
// light to dark as modules get heavier. The pkg directory is organized into
// three areas:
//
//  1. Input - [stats] normalizes webpack, Vite, Rollup, esbuild and tsup
//     output into [bundle] records
//  2. Rendering - [render/treemap], [render/grid] and [render/color] draw the
//     heat map
//  3. Analysis - [budget], [analysis], [diff] and [snapshot] look for size
//     problems and track them between builds
//
// # Architecture
//
// The typical data flow through bunx-ray:
//
//	stats.json / meta.json
//	         ↓
//	    [stats] package (detect format, normalize modules and chunks)
//	         ↓
//	    [render/treemap] package (squarified layout on the terminal grid)
//	         ↓
//	    [render/grid] package (shade, border and label the cells)
//	         ↓
//	    [report] package (legend, summary, tables; Markdown and JSON)
//
// [pipeline] runs the whole chain for the CLI, adding budget checks,
// duplicate detection and the snapshot trend.
//
// # Quick Start
//
//	b, _ := stats.Load("dist/stats.json", stats.FormatAuto)
//	cells := treemap.Layout(b.Modules, 80, 24)
//	fmt.Println(grid.Draw(cells, 80, 24, grid.DefaultOptions()))
//
// # Main Packages
//
// [bundle] - Module and chunk records plus size formatting helpers shared by
// every other package.
//
// [stats] - Stats file discovery, format detection and the per-bundler
// normalizers.
//
// [render/treemap] - Squarified treemap over an integer grid. Cells tile the
// grid without gaps or overlaps.
//
// [render/grid] - Rasterizes cells into shaded text with optional box
// borders and labels.
//
// [render/color] - Maps a module's share of the largest module to an ANSI
// colour.
//
// [budget] - Size limits (--size, --total-size) and their report lines.
//
// [analysis] - Duplicate package detection and per-package grouping.
//
// [diff] - Module-level comparison of two builds.
//
// [snapshot] - Saved build history and the trend against it.
//
// [config] - Project config files (.bunxrayrc.json, bunxray.toml, ...).
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hooks for logging and metrics around pipeline stages.
//
// [bundle]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/bundle
// [stats]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/stats
// [render/treemap]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/render/treemap
// [render/grid]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/render/grid
// [render/color]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/render/color
// [report]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/report
// [pipeline]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/pipeline
// [budget]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/budget
// [analysis]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/analysis
// [diff]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/diff
// [snapshot]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/snapshot
// [config]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/config
// [errors]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/errors
// [observability]: https://pkg.go.dev/github.com/jpatterson933/bunx-ray/pkg/observability
package pkg
