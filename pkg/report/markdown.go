package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/diff"
)

const (
	barWidth           = 16
	mdNameWidth        = 50
	mdChangedNameWidth = 40
)

// Markdown renders the top modules as a GitHub-flavoured table. Each row
// carries a bar scaled to the largest listed module.
func Markdown(mods []bundle.Module, top int) string {
	total := bundle.TotalSize(mods)
	list := bundle.TopModules(mods, top)
	var largest int64
	if len(list) > 0 {
		largest = list[0].Size
	}

	lines := []string{
		"### bunx-ray — Bundle Report",
		"",
		fmt.Sprintf("**Total:** %s | **Modules:** %d", bundle.FormatSize(total), len(mods)),
		"",
		"| # | Module | Size | % | |",
		"|---|--------|------|---|---|",
	}
	for i, m := range list {
		ratio := 0.0
		if largest > 0 {
			ratio = float64(m.Size) / float64(largest)
		}
		lines = append(lines, fmt.Sprintf("| %d | `%s` | %s | %.1f%% | `%s` |",
			i+1,
			bundle.TruncateLeft(m.Path, mdNameWidth),
			bundle.FormatSize(m.Size),
			percent(m.Size, total),
			Bar(ratio),
		))
	}
	return strings.Join(lines, "\n")
}

// Bar renders ratio as a fixed-width bar of full and light blocks.
func Bar(ratio float64) string {
	filled := int(math.Floor(ratio*barWidth + 0.5))
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// MarkdownDiff renders a build comparison as GitHub-flavoured tables.
func MarkdownDiff(r diff.Result) string {
	lines := []string{
		"### bunx-ray — Diff Report",
		"",
		fmt.Sprintf("**Total:** %s → %s (%s, %s)",
			bundle.FormatSize(r.OldTotal), bundle.FormatSize(r.NewTotal),
			diff.FormatDelta(r.TotalDelta), strings.Trim(diff.FormatPct(r.TotalPctChange), "()")),
		"",
	}

	if len(r.Changed) > 0 {
		lines = append(lines,
			"#### Changed",
			"| Module | Old | New | Delta | |",
			"|--------|-----|-----|-------|-|",
		)
		for _, d := range r.Changed {
			arrow := "▼"
			if d.Delta > 0 {
				arrow = "▲"
			}
			delta := diff.FormatDelta(d.Delta)
			if d.PctChange != nil {
				delta += " " + diff.FormatPct(*d.PctChange)
			}
			lines = append(lines, fmt.Sprintf("| `%s` | %s | %s | %s | %s |",
				bundle.TruncateLeft(d.Path, mdChangedNameWidth),
				bundle.FormatSize(*d.OldSize), bundle.FormatSize(*d.NewSize),
				delta, arrow,
			))
		}
		lines = append(lines, "")
	}

	if len(r.Added) > 0 {
		lines = append(lines, "#### Added", "| Module | Size |", "|--------|------|")
		for _, d := range r.Added {
			lines = append(lines, fmt.Sprintf("| `%s` | %s |",
				bundle.TruncateLeft(d.Path, mdNameWidth), bundle.FormatSize(*d.NewSize)))
		}
		lines = append(lines, "")
	}

	if len(r.Removed) > 0 {
		lines = append(lines, "#### Removed", "| Module | Size |", "|--------|------|")
		for _, d := range r.Removed {
			lines = append(lines, fmt.Sprintf("| `%s` | %s |",
				bundle.TruncateLeft(d.Path, mdNameWidth), bundle.FormatSize(*d.OldSize)))
		}
		lines = append(lines, "")
	}

	if n := len(r.Unchanged); n > 0 {
		lines = append(lines, fmt.Sprintf("*%d unchanged %s*", n, bundle.Plural(n, "module")))
	}

	return strings.Join(lines, "\n")
}
