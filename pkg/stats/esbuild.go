package stats

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

// Esbuild normalizes an esbuild metafile. tsup writes the same layout.
type Esbuild struct {
	tsup bool
}

func (e Esbuild) Format() Format {
	if e.tsup {
		return FormatTsup
	}
	return FormatEsbuild
}

type esbuildInput struct {
	Bytes *float64 `json:"bytes"`
}

type esbuildOutput struct {
	Bytes  *float64                   `json:"bytes"`
	Inputs map[string]json.RawMessage `json:"inputs"`
}

// Modules reads `inputs`, where each source file records its byte count.
func (Esbuild) Modules(doc Document) ([]bundle.Module, error) {
	if !isObject(doc["inputs"]) {
		return nil, nil
	}
	var inputs map[string]*esbuildInput
	if err := json.Unmarshal(doc["inputs"], &inputs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed esbuild inputs")
	}

	mods := make([]bundle.Module, 0, len(inputs))
	for path, in := range inputs {
		var size int64
		if in != nil {
			size = firstSize(in.Bytes)
		}
		mods = append(mods, bundle.Module{Path: path, Size: size})
	}
	return sortModules(mods), nil
}

// Chunks reads `outputs`, ordered by file name.
func (Esbuild) Chunks(doc Document) []bundle.Chunk {
	if !isObject(doc["outputs"]) {
		return nil
	}
	var outputs map[string]*esbuildOutput
	if err := json.Unmarshal(doc["outputs"], &outputs); err != nil {
		return nil
	}

	chunks := make([]bundle.Chunk, 0, len(outputs))
	for name, out := range outputs {
		c := bundle.Chunk{Name: name}
		if out != nil {
			c.Size = firstSize(out.Bytes)
			c.ModuleCount = len(out.Inputs)
		}
		chunks = append(chunks, c)
	}
	slices.SortFunc(chunks, func(a, b bundle.Chunk) int { return strings.Compare(a.Name, b.Name) })
	return chunks
}
