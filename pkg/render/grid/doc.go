// Package grid rasterizes treemap cells into a fixed-size block of text.
//
// # Passes
//
// [Draw] builds the picture in up to four passes over a W×H rune buffer:
//
//  1. Fill: each cell is painted with a shade glyph from [Shades] chosen by
//     its size relative to the largest cell. The pass also records which
//     cell owns every position.
//  2. Borders: wherever the owner changes to the right or below, the shade is
//     replaced by │, ─ or ┼.
//  3. Labels: cells at least 12 wide and 3 tall get their file name centred
//     inside them, truncated with … when it does not fit.
//  4. Colour: every non-blank owned glyph is wrapped in the gradient colour
//     of its cell.
//
// Each enabled pass overwrites the previous one, so labels win over borders.
//
// # Geometry
//
// The result always has exactly H lines of W visible glyphs joined by "\n".
// Escape sequences added by colouring do not count towards that width.
// Positions no cell covers stay blank.
package grid
