// Package render turns bundle modules into character-grid heat maps.
//
// # Overview
//
// Rendering happens in two steps that are kept in separate subpackages:
//
//   - [treemap] subdivides the grid into one rectangle per module
//   - [grid] rasterizes those rectangles into shaded, bordered text
//
// [color] supplies the size-driven gradient used when output is colorized.
//
//	cells := treemap.Layout(mods, 80, 24)
//	out := grid.Draw(cells, 80, 24, grid.DefaultOptions())
//	fmt.Println(out)
//
// All three packages are pure: the same modules and dimensions always produce
// the same cells and the same string.
//
// [treemap]: github.com/jpatterson933/bunx-ray/pkg/render/treemap
// [grid]: github.com/jpatterson933/bunx-ray/pkg/render/grid
// [color]: github.com/jpatterson933/bunx-ray/pkg/render/color
package render
