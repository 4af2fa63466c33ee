// Package report assembles the outputs bunx-ray prints.
//
// # Terminal report
//
// [Render] lays the modules out with [treemap.Layout], draws them with
// [grid.Draw] and adds the legend, summary, top-modules table and duplicate
// listing around the grid. [ChunkLines] lists emitted output files.
//
// # Markdown
//
// [Markdown] and [MarkdownDiff] produce GitHub-flavoured tables suitable for
// pull request comments.
//
// # JSON
//
// [JSON] summarises the modules and [Document] adds chunks, packages,
// duplicates and budget violations for machine consumption.
//
// [treemap.Layout]: github.com/jpatterson933/bunx-ray/pkg/render/treemap.Layout
// [grid.Draw]: github.com/jpatterson933/bunx-ray/pkg/render/grid.Draw
package report
