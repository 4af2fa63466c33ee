package budget

import (
	"fmt"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

const pathWidth = 40

// FormatViolations renders per-module violations as report lines.
func FormatViolations(violations []Violation, limit int64) []string {
	lines := []string{"", fmt.Sprintf("Size violations (--size %s):", bundle.FormatSize(limit))}
	for _, v := range violations {
		lines = append(lines, fmt.Sprintf("  FAIL  %s  %s  (+%s over size)",
			bundle.FitLeft(v.Module.Path, pathWidth),
			bundle.PadLeft(bundle.FormatSize(v.Module.Size), 8),
			bundle.FormatSize(v.OverBy),
		))
	}
	verb := "exceed"
	if len(violations) == 1 {
		verb = "exceeds"
	}
	lines = append(lines, "", fmt.Sprintf("%d %s %s %s size",
		len(violations), bundle.Plural(len(violations), "module"), verb, bundle.FormatSize(limit)))
	return lines
}

// FormatTotalViolation renders a total-size violation as report lines.
func FormatTotalViolation(v TotalViolation) []string {
	return []string{
		"",
		fmt.Sprintf("Total size violation (--total-size %s):", bundle.FormatSize(v.Limit)),
		fmt.Sprintf("  FAIL  Total bundle: %s  (+%s over size)", bundle.FormatSize(v.Total), bundle.FormatSize(v.OverBy)),
	}
}

// Lines renders every violation in r, per-module first.
func (r Result) Lines() []string {
	var lines []string
	if len(r.Modules) > 0 && r.Limits.Module != nil {
		lines = append(lines, FormatViolations(r.Modules, *r.Limits.Module)...)
	}
	if r.Total != nil {
		lines = append(lines, FormatTotalViolation(*r.Total)...)
	}
	return lines
}

// Annotations renders violations as GitHub Actions error commands so they
// show up on the workflow summary.
func Annotations(violations []Violation, total *TotalViolation) []string {
	var lines []string
	for _, v := range violations {
		lines = append(lines, fmt.Sprintf(
			"::error title=bunx-ray size violation::%s (%s) exceeds %s limit (+%s over)",
			v.Module.Path, bundle.FormatSize(v.Module.Size), bundle.FormatSize(v.Limit), bundle.FormatSize(v.OverBy),
		))
	}
	if total != nil {
		lines = append(lines, fmt.Sprintf(
			"::error title=bunx-ray total size violation::Total bundle (%s) exceeds %s limit (+%s over)",
			bundle.FormatSize(total.Total), bundle.FormatSize(total.Limit), bundle.FormatSize(total.OverBy),
		))
	}
	return lines
}
