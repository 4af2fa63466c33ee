package bundle

import (
	"cmp"
	"slices"
)

// Module is a single bundled file and its size in bytes.
type Module struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Chunk is an emitted output file (webpack chunk, rollup chunk, esbuild output).
type Chunk struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ModuleCount int    `json:"moduleCount"`
}

// TotalSize returns the sum of all module sizes.
func TotalSize(mods []Module) int64 {
	var total int64
	for _, m := range mods {
		total += m.Size
	}
	return total
}

// MaxSize returns the largest module size, or 0 for an empty slice.
func MaxSize(mods []Module) int64 {
	var largest int64
	for _, m := range mods {
		largest = max(largest, m.Size)
	}
	return largest
}

// SortBySize sorts mods in place, largest first. Equal sizes keep their
// relative order.
func SortBySize(mods []Module) {
	slices.SortStableFunc(mods, func(a, b Module) int {
		return cmp.Compare(b.Size, a.Size)
	})
}

// TopModules returns the n largest modules without modifying mods.
// A negative n is treated as zero.
func TopModules(mods []Module, n int) []Module {
	sorted := slices.Clone(mods)
	SortBySize(sorted)
	n = max(0, min(n, len(sorted)))
	return sorted[:n]
}
