// Package diff compares the modules of two builds.
//
// [Compare] matches modules by path and sorts them into changed, unchanged,
// added and removed sets. [Lines] renders the result for a terminal.
package diff

import (
	"cmp"
	"slices"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

// ModuleDiff describes how one module changed between builds.
// OldSize is nil for added modules and NewSize is nil for removed ones.
type ModuleDiff struct {
	Path    string `json:"path"`
	OldSize *int64 `json:"oldSize"`
	NewSize *int64 `json:"newSize"`
	Delta   int64  `json:"delta"`
	// PctChange is nil when there is no old size to compare against.
	PctChange *float64 `json:"pctChange"`
}

// Result is the outcome of comparing two builds.
type Result struct {
	OldTotal       int64        `json:"oldTotal"`
	NewTotal       int64        `json:"newTotal"`
	TotalDelta     int64        `json:"totalDelta"`
	TotalPctChange float64      `json:"totalPctChange"`
	Changed        []ModuleDiff `json:"changed"`
	Unchanged      []ModuleDiff `json:"unchanged"`
	Added          []ModuleDiff `json:"added"`
	Removed        []ModuleDiff `json:"removed"`
}

// Compare diffs oldMods against newMods.
//
// Changed modules are ordered by absolute delta, added modules by size and
// removed modules by how much they saved, largest first in each case.
// Unchanged modules are ordered by path. If a path appears more than once
// in one build the last size wins.
func Compare(oldMods, newMods []bundle.Module) Result {
	oldSizes := sizesByPath(oldMods)
	newSizes := sizesByPath(newMods)

	r := Result{
		Changed:   []ModuleDiff{},
		Unchanged: []ModuleDiff{},
		Added:     []ModuleDiff{},
		Removed:   []ModuleDiff{},
	}

	for _, path := range uniquePaths(newMods) {
		newSize := newSizes[path]
		oldSize, ok := oldSizes[path]
		switch {
		case !ok:
			r.Added = append(r.Added, ModuleDiff{Path: path, NewSize: ptr(newSize), Delta: newSize})
		case oldSize == newSize:
			r.Unchanged = append(r.Unchanged, ModuleDiff{
				Path: path, OldSize: ptr(oldSize), NewSize: ptr(newSize), PctChange: ptr(0.0),
			})
		default:
			delta := newSize - oldSize
			r.Changed = append(r.Changed, ModuleDiff{
				Path: path, OldSize: ptr(oldSize), NewSize: ptr(newSize), Delta: delta,
				PctChange: pctChange(delta, oldSize),
			})
		}
	}

	for _, path := range uniquePaths(oldMods) {
		if _, ok := newSizes[path]; ok {
			continue
		}
		oldSize := oldSizes[path]
		r.Removed = append(r.Removed, ModuleDiff{Path: path, OldSize: ptr(oldSize), Delta: -oldSize})
	}

	slices.SortStableFunc(r.Changed, func(a, b ModuleDiff) int {
		return cmp.Compare(abs(b.Delta), abs(a.Delta))
	})
	slices.SortStableFunc(r.Added, func(a, b ModuleDiff) int {
		return cmp.Compare(b.Delta, a.Delta)
	})
	slices.SortStableFunc(r.Removed, func(a, b ModuleDiff) int {
		return cmp.Compare(a.Delta, b.Delta)
	})
	slices.SortFunc(r.Unchanged, func(a, b ModuleDiff) int {
		return cmp.Compare(a.Path, b.Path)
	})

	r.OldTotal = bundle.TotalSize(oldMods)
	r.NewTotal = bundle.TotalSize(newMods)
	r.TotalDelta = r.NewTotal - r.OldTotal
	if r.OldTotal != 0 {
		r.TotalPctChange = float64(r.TotalDelta) / float64(r.OldTotal) * 100
	}
	return r
}

func sizesByPath(mods []bundle.Module) map[string]int64 {
	sizes := make(map[string]int64, len(mods))
	for _, m := range mods {
		sizes[m.Path] = m.Size
	}
	return sizes
}

// uniquePaths returns module paths in first-seen order.
func uniquePaths(mods []bundle.Module) []string {
	seen := make(map[string]bool, len(mods))
	paths := make([]string, 0, len(mods))
	for _, m := range mods {
		if !seen[m.Path] {
			seen[m.Path] = true
			paths = append(paths, m.Path)
		}
	}
	return paths
}

func pctChange(delta, oldSize int64) *float64 {
	if oldSize == 0 {
		return nil
	}
	return ptr(float64(delta) / float64(oldSize) * 100)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func ptr[T any](v T) *T { return &v }
