package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/errors"
	"github.com/jpatterson933/bunx-ray/pkg/stats"
)

// ResolveStatsFile returns path when set, otherwise the first well-known
// stats file below dir. found reports whether the path came from the search.
func ResolveStatsFile(dir, path string) (resolved string, found bool, err error) {
	if path != "" {
		return path, false, nil
	}
	if rel, ok := stats.FindFile(dir); ok {
		return filepath.Join(dir, rel), true, nil
	}
	return "", false, errors.New(errors.ErrCodeFileNotFound, "%s", notFoundMessage())
}

func notFoundMessage() string {
	var b strings.Builder
	b.WriteString("No stats file found.\n\nSearched:\n")
	for _, p := range stats.KnownPaths {
		fmt.Fprintf(&b, "  %s\n", p)
	}
	b.WriteString("\nGenerate one with your bundler:")
	for _, h := range stats.GenerateHints {
		fmt.Fprintf(&b, "\n  %-9s %s", h.Bundler+":", h.Command)
	}
	return b.String()
}

// Load reads and normalizes the stats file at path. A file that yields no
// modules is an error.
func Load(path string, format stats.Format) (*stats.Stats, error) {
	bundle, err := stats.Load(path, format)
	if err != nil {
		return nil, err
	}
	if len(bundle.Modules) == 0 {
		return nil, errors.New(errors.ErrCodeNoModules, "No modules found in stats file.")
	}
	return bundle, nil
}
