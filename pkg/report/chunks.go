package report

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

const chunkNameWidth = 30

// ChunkLines lists output chunks, largest first. A build with a single chunk
// has nothing worth listing, so nil is returned for one or zero chunks.
func ChunkLines(chunks []bundle.Chunk) []string {
	if len(chunks) <= 1 {
		return nil
	}

	sorted := slices.Clone(chunks)
	slices.SortStableFunc(sorted, func(a, b bundle.Chunk) int {
		return cmp.Compare(b.Size, a.Size)
	})

	lines := []string{fmt.Sprintf("Chunks (%d)", len(chunks))}
	for _, c := range sorted {
		lines = append(lines, fmt.Sprintf("  %s  %s  (%d %s)",
			bundle.FitLeft(c.Name, chunkNameWidth),
			bundle.PadLeft(bundle.FormatSize(c.Size), 10),
			c.ModuleCount, bundle.Plural(c.ModuleCount, "module"),
		))
	}
	return lines
}
