package snapshot

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

// Trend is a module whose size moved since the snapshot.
type Trend struct {
	Path         string `json:"path"`
	CurrentSize  int64  `json:"currentSize"`
	PreviousSize int64  `json:"previousSize"`
	Delta        int64  `json:"delta"`
}

// Comparison summarises the current build against a snapshot.
type Comparison struct {
	Changed        []Trend `json:"changed"`
	UnchangedCount int     `json:"unchangedCount"`
	NewCount       int     `json:"newCount"`
	RemovedCount   int     `json:"removedCount"`
}

// HasChanges reports whether anything differs from the snapshot.
func (c Comparison) HasChanges() bool {
	return len(c.Changed) > 0 || c.NewCount > 0 || c.RemovedCount > 0
}

// Compare matches current against snap by module path. Changed modules are
// ordered by absolute delta, largest first.
func Compare(current []bundle.Module, snap *Snapshot) Comparison {
	previous := make(map[string]int64, len(snap.Modules))
	for _, m := range snap.Modules {
		previous[m.Path] = m.Size
	}
	present := make(map[string]bool, len(current))

	var c Comparison
	for _, m := range current {
		present[m.Path] = true
		prev, ok := previous[m.Path]
		switch {
		case !ok:
			c.NewCount++
		case prev != m.Size:
			c.Changed = append(c.Changed, Trend{
				Path:         m.Path,
				CurrentSize:  m.Size,
				PreviousSize: prev,
				Delta:        m.Size - prev,
			})
		default:
			c.UnchangedCount++
		}
	}
	for path := range previous {
		if !present[path] {
			c.RemovedCount++
		}
	}

	slices.SortStableFunc(c.Changed, func(a, b Trend) int {
		return cmp.Compare(absDelta(b.Delta), absDelta(a.Delta))
	})
	return c
}

const trendNameWidth = 35

// TrendLines renders c under a "Trends (vs last snapshot)" heading.
func TrendLines(c Comparison) []string {
	lines := []string{"Trends (vs last snapshot)"}
	if !c.HasChanges() {
		return append(lines, "  → No changes")
	}

	for _, t := range c.Changed {
		arrow, sign := "↓", ""
		if t.Delta > 0 {
			arrow, sign = "↑", "+"
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %s%s",
			arrow, bundle.FitLeft(t.Path, trendNameWidth), sign, bundle.FormatSize(t.Delta)))
	}

	var parts []string
	if c.UnchangedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", c.UnchangedCount))
	}
	if c.NewCount > 0 {
		parts = append(parts, fmt.Sprintf("%d new", c.NewCount))
	}
	if c.RemovedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", c.RemovedCount))
	}
	if len(parts) > 0 {
		lines = append(lines, "  "+strings.Join(parts, ", "))
	}
	return lines
}

func absDelta(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
