package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/analysis"
	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/render/color"
	"github.com/jpatterson933/bunx-ray/pkg/render/grid"
	"github.com/jpatterson933/bunx-ray/pkg/render/treemap"
)

// Options controls the terminal report.
type Options struct {
	Cols, Rows int
	Top        int

	Legend     bool
	Summary    bool
	Color      bool
	Labels     bool
	Borders    bool
	Duplicates bool
}

// Report is the rendered terminal report. Optional parts are empty when
// disabled.
type Report struct {
	LegendLine     string
	SummaryLine    string
	Grid           string
	TableLines     []string
	DuplicateLines []string
}

const tableNameWidth = 28

// Render builds the terminal report for mods.
func Render(mods []bundle.Module, opts Options) Report {
	return RenderCells(mods, treemap.Layout(mods, opts.Cols, opts.Rows), opts)
}

// RenderCells builds the terminal report from a layout already computed for
// mods at opts.Cols by opts.Rows.
func RenderCells(mods []bundle.Module, cells []treemap.Cell, opts Options) Report {
	largest := bundle.MaxSize(mods)
	total := bundle.TotalSize(mods)

	r := Report{
		Grid: grid.Draw(cells, opts.Cols, opts.Rows, grid.Options{
			Color:   opts.Color,
			Labels:  opts.Labels,
			Borders: opts.Borders,
		}),
	}

	if opts.Legend {
		r.LegendLine = legend(largest, opts.Color)
	}
	if opts.Summary {
		r.SummaryLine = fmt.Sprintf("Total bundle: %s | modules: %d", bundle.FormatSize(total), len(mods))
	}

	list := bundle.TopModules(mods, opts.Top)
	r.TableLines = []string{fmt.Sprintf("Top %d modules", len(list))}
	for i, m := range list {
		shade := string(grid.ShadeFor(m.Size, largest))
		if opts.Color {
			shade = color.ForSize(m.Size, largest)(shade)
		}
		r.TableLines = append(r.TableLines, fmt.Sprintf("%2d %s %s %8s (%4s%%)",
			i+1, shade,
			bundle.FitLeft(m.Path, tableNameWidth),
			bundle.FormatSize(m.Size),
			fmt.Sprintf("%.1f", percent(m.Size, total)),
		))
	}

	if opts.Duplicates {
		r.DuplicateLines = analysis.DuplicateLines(analysis.FindDuplicates(mods))
	}
	return r
}

// legend describes the four shade bands. Each swatch is painted with the
// colour of a representative size inside its band.
func legend(largest int64, colored bool) string {
	t1 := scaled(largest, 0.25)
	t2 := scaled(largest, 0.5)
	t3 := scaled(largest, 0.75)

	entries := []struct {
		shade rune
		label string
		ratio float64
	}{
		{grid.Shades[3], ">" + bundle.FormatSize(t3), 1},
		{grid.Shades[2], bundle.FormatSize(t2) + "-" + bundle.FormatSize(t3), 0.625},
		{grid.Shades[1], bundle.FormatSize(t1) + "-" + bundle.FormatSize(t2), 0.375},
		{grid.Shades[0], "<" + bundle.FormatSize(t1), 0.125},
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		swatch := string(e.shade)
		if colored {
			swatch = color.ForSize(scaled(largest, e.ratio), largest)(swatch)
		}
		parts[i] = swatch + " " + e.label
	}
	return "Legend  " + strings.Join(parts, "  ")
}

// percent returns size as a share of total, or 0 for an empty bundle.
func percent(size, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(size) / float64(total) * 100
}

func scaled(v int64, ratio float64) int64 {
	return int64(math.Round(float64(v) * ratio))
}
