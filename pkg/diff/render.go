package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/render/color"
)

const nameWidth = 38

type palette struct {
	title, grew, shrank, added, dim color.Func
}

func newPalette(colored bool) palette {
	if !colored {
		return palette{color.Identity, color.Identity, color.Identity, color.Identity, color.Identity}
	}
	return palette{
		title:  color.Paint(color.Style().Bold(true)),
		grew:   color.Paint(color.Style().Foreground(lipgloss.Color("1"))),
		shrank: color.Paint(color.Style().Foreground(lipgloss.Color("2"))),
		added:  color.Paint(color.Style().Foreground(lipgloss.Color("3"))),
		dim:    color.Paint(color.Style().Faint(true)),
	}
}

// Lines renders r as terminal report lines. Growth is red, shrinkage green,
// added modules yellow and removed modules dimmed.
func Lines(r Result, colored bool) []string {
	p := newPalette(colored)

	lines := []string{
		p.title("bunx-ray diff"),
		"",
		fmt.Sprintf("Total: %s → %s  (%s, %s%%)",
			bundle.FormatSize(r.OldTotal), bundle.FormatSize(r.NewTotal),
			FormatDelta(r.TotalDelta), signed(r.TotalPctChange)),
		"",
	}

	if len(r.Changed) > 0 {
		lines = append(lines, fmt.Sprintf("   %s  %s  %s  %s",
			p.dim(bundle.PadRight("Module", nameWidth)),
			p.dim(bundle.PadLeft("Old", 8)),
			p.dim(bundle.PadLeft("New", 8)),
			p.dim(bundle.PadLeft("Delta", 10)),
		))
		for _, d := range r.Changed {
			arrow, paint := p.grew("▲"), p.grew
			if d.Delta <= 0 {
				arrow, paint = p.shrank("▼"), p.shrank
			}
			pct := ""
			if d.PctChange != nil {
				pct = paint(FormatPct(*d.PctChange))
			}
			lines = append(lines, fmt.Sprintf(" %s  %s  %s  %s  %s  %s",
				arrow,
				bundle.FitLeft(d.Path, nameWidth),
				bundle.PadLeft(bundle.FormatSize(deref(d.OldSize)), 8),
				bundle.PadLeft(bundle.FormatSize(deref(d.NewSize)), 8),
				paint(bundle.PadLeft(FormatDelta(d.Delta), 10)),
				pct,
			))
		}
		lines = append(lines, "")
	}

	if len(r.Added) > 0 {
		lines = append(lines, p.added(" Added"))
		for _, d := range r.Added {
			lines = append(lines, p.added(fmt.Sprintf(" +  %s  %s  %s",
				bundle.FitLeft(d.Path, nameWidth),
				strings.Repeat(" ", 8),
				bundle.PadLeft(bundle.FormatSize(deref(d.NewSize)), 8),
			)))
		}
		lines = append(lines, "")
	}

	if len(r.Removed) > 0 {
		lines = append(lines, p.dim(" Removed"))
		for _, d := range r.Removed {
			lines = append(lines, p.dim(fmt.Sprintf(" -  %s  %s",
				bundle.FitLeft(d.Path, nameWidth),
				bundle.PadLeft(bundle.FormatSize(deref(d.OldSize)), 8),
			)))
		}
		lines = append(lines, "")
	}

	if n := len(r.Unchanged); n > 0 {
		lines = append(lines, p.dim(fmt.Sprintf(" %d unchanged %s", n, bundle.Plural(n, "module"))))
	}

	return lines
}

// FormatDelta renders a size change with an explicit sign for growth.
func FormatDelta(delta int64) string {
	if delta > 0 {
		return "+" + bundle.FormatSize(delta)
	}
	return bundle.FormatSize(delta)
}

// FormatPct renders a percentage change as "(+12.5%)".
func FormatPct(pct float64) string {
	return "(" + signed(pct) + "%)"
}

func signed(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
