package stats

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

// Normalizer converts one bundler's stats document into modules and chunks.
type Normalizer interface {
	// Format returns the format this normalizer handles.
	Format() Format
	// Modules extracts every module with its emitted size.
	Modules(doc Document) ([]bundle.Module, error)
	// Chunks extracts the output files of the build.
	Chunks(doc Document) []bundle.Chunk
}

// Document is a decoded stats file, keyed by top-level field.
type Document map[string]json.RawMessage

// Has reports whether key is present with a truthy value: not null, false,
// zero or the empty string.
func (d Document) Has(key string) bool {
	return truthy(d[key])
}

// Decode parses a stats file into a Document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "stats file must contain a JSON object")
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "stats file must contain a JSON object")
	}
	return doc, nil
}

// NormalizerFor returns the normalizer for an explicit format.
func NormalizerFor(f Format) (Normalizer, error) {
	switch f {
	case FormatWebpack:
		return Webpack{}, nil
	case FormatVite:
		return Vite{}, nil
	case FormatRollup:
		return Rollup{}, nil
	case FormatEsbuild:
		return Esbuild{}, nil
	case FormatTsup:
		return Esbuild{tsup: true}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "no normalizer for format %q", f.String())
}

// Detect guesses the format of doc from its top-level keys:
//
//  1. inputs and outputs: esbuild
//  2. modules or children: webpack
//  3. an output array containing a chunk entry: rollup
//  4. output: vite
func Detect(doc Document) (Format, error) {
	switch {
	case doc.Has("inputs") && doc.Has("outputs"):
		return FormatEsbuild, nil
	case doc.Has("modules") || doc.Has("children"):
		return FormatWebpack, nil
	case hasChunkOutput(doc):
		return FormatRollup, nil
	case doc.Has("output"):
		return FormatVite, nil
	}
	return FormatAuto, errors.New(errors.ErrCodeInvalidFormat,
		"Unable to detect stats format; please pass --webpack | --vite | --rollup | --esbuild | --tsup")
}

// Normalize extracts modules from a stats file. With FormatAuto the format is
// detected; the format actually used is returned alongside the modules.
func Normalize(data []byte, format Format) ([]bundle.Module, Format, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, format, err
	}
	n, err := resolve(doc, format)
	if err != nil {
		return nil, format, err
	}
	mods, err := n.Modules(doc)
	if err != nil {
		return nil, n.Format(), err
	}
	return mods, n.Format(), nil
}

// ExtractChunks lists the output chunks of a stats file. Documents without
// chunk information yield an empty list.
func ExtractChunks(data []byte, format Format) ([]bundle.Chunk, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if format == FormatAuto {
		return chunksByShape(doc), nil
	}
	n, err := NormalizerFor(format)
	if err != nil {
		return nil, err
	}
	return n.Chunks(doc), nil
}

// chunksByShape mirrors format detection but keys off the chunk-bearing
// fields, so a webpack file without a modules list still yields chunks.
func chunksByShape(doc Document) []bundle.Chunk {
	switch {
	case isArray(doc["chunks"]):
		return Webpack{}.Chunks(doc)
	case isObject(doc["outputs"]):
		return Esbuild{}.Chunks(doc)
	case doc.Has("output"):
		return Rollup{}.Chunks(doc)
	}
	return nil
}

func resolve(doc Document, format Format) (Normalizer, error) {
	if format != FormatAuto {
		return NormalizerFor(format)
	}
	detected, err := Detect(doc)
	if err != nil {
		return nil, err
	}
	return NormalizerFor(detected)
}

// sortModules orders modules largest first, then by path.
func sortModules(mods []bundle.Module) []bundle.Module {
	slices.SortFunc(mods, func(a, b bundle.Module) int {
		if a.Size != b.Size {
			if a.Size > b.Size {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Path, b.Path)
	})
	return mods
}
