package stats

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

// KnownPaths are the locations searched, in order, when no stats file is
// given on the command line.
var KnownPaths = []string{
	"stats.json",
	"dist/stats.json",
	"build/stats.json",
	".next/stats.json",
	"meta.json",
	"metafile.json",
	"dist/meta.json",
	"dist/metafile.json",
	"build/meta.json",
	"stats/stats.json",
}

// GenerateHints lists how each bundler can be told to write a stats file.
var GenerateHints = []struct{ Bundler, Command string }{
	{"webpack", "npx webpack --json > stats.json"},
	{"esbuild", "esbuild --bundle --metafile=meta.json"},
	{"vite", "vite build (with vite-bundle-analyzer)"},
	{"rollup", "rollup --bundleConfigAsCjs (with plugin)"},
	{"tsup", "tsup --metafile"},
}

// FindFile returns the first entry of KnownPaths that exists below dir.
// The returned path is relative to dir.
func FindFile(dir string) (string, bool) {
	for _, candidate := range KnownPaths {
		info, err := os.Stat(filepath.Join(dir, candidate))
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// ReadFile reads a stats file and checks that it holds valid JSON.
func ReadFile(path string) ([]byte, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "Stats file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "Failed to read %s", path)
	}
	if !json.Valid(data) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "Failed to parse JSON from %s", path)
	}
	return data, nil
}

// Stats is a normalized stats file.
type Stats struct {
	Path    string
	Format  Format
	Modules []bundle.Module
	Chunks  []bundle.Chunk
}

// Load reads and normalizes the stats file at path.
func Load(path string, format Format) (*Stats, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	mods, detected, err := Normalize(data, format)
	if err != nil {
		return nil, err
	}
	chunks, err := ExtractChunks(data, format)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Path:    path,
		Format:  detected,
		Modules: mods,
		Chunks:  chunks,
	}, nil
}
