package stats

import (
	"encoding/json"
	"slices"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

// outputEntry is one element of a vite or rollup `output` list.
type outputEntry struct {
	Type     string                 `json:"type"`
	FileName *string                `json:"fileName"`
	Modules  map[string]*renderSize `json:"modules"`
}

// renderSize holds the size fields rollup reports for a module.
// They are tried in declaration order.
type renderSize struct {
	RenderedLength *float64 `json:"renderedLength"`
	RenderedSize   *float64 `json:"renderedSize"`
	OriginalLength *float64 `json:"originalLength"`
	Size           *float64 `json:"size"`
}

func (r *renderSize) bytes() int64 {
	if r == nil {
		return 0
	}
	return firstSize(r.RenderedLength, r.RenderedSize, r.OriginalLength, r.Size)
}

// Vite normalizes vite build stats. `output` may be a single entry or a list.
type Vite struct{}

func (Vite) Format() Format { return FormatVite }

func (Vite) Modules(doc Document) ([]bundle.Module, error) {
	return outputModules(doc, "Vite", func(outputEntry) bool { return true })
}

func (Vite) Chunks(doc Document) []bundle.Chunk { return outputChunks(doc) }

// Rollup normalizes rollup bundle output. Asset entries carry no modules and
// are skipped.
type Rollup struct{}

func (Rollup) Format() Format { return FormatRollup }

func (Rollup) Modules(doc Document) ([]bundle.Module, error) {
	return outputModules(doc, "Rollup", func(e outputEntry) bool {
		return e.Type == "" || e.Type == "chunk"
	})
}

func (Rollup) Chunks(doc Document) []bundle.Chunk { return outputChunks(doc) }

func hasChunkOutput(doc Document) bool {
	if !isArray(doc["output"]) {
		return false
	}
	entries, err := decodeOutputs(doc["output"])
	if err != nil {
		return false
	}
	return slices.ContainsFunc(entries, func(e *outputEntry) bool {
		return e != nil && e.Type == "chunk"
	})
}

func decodeOutputs(raw json.RawMessage) ([]*outputEntry, error) {
	if isArray(raw) {
		var entries []*outputEntry
		err := json.Unmarshal(raw, &entries)
		return entries, err
	}
	var single *outputEntry
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []*outputEntry{single}, nil
}

func outputModules(doc Document, label string, keep func(outputEntry) bool) ([]bundle.Module, error) {
	if !doc.Has("output") {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s stats missing 'output' field", label)
	}
	entries, err := decodeOutputs(doc["output"])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed %s output", label)
	}
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "%s stats missing 'output' field", label)
	}

	var mods []bundle.Module
	found := false
	for _, e := range entries {
		if e == nil || e.Modules == nil || !keep(*e) {
			continue
		}
		found = true
		for path, m := range e.Modules {
			mods = append(mods, bundle.Module{Path: path, Size: m.bytes()})
		}
	}
	if !found {
		return nil, errors.New(errors.ErrCodeNoModules, "%s stats contain no modules in any output entry", label)
	}
	return sortModules(mods), nil
}

// outputChunks lists chunk entries of an `output` array; a chunk's size is
// the sum of its modules' rendered sizes.
func outputChunks(doc Document) []bundle.Chunk {
	if !isArray(doc["output"]) {
		return nil
	}
	entries, err := decodeOutputs(doc["output"])
	if err != nil {
		return nil
	}

	var chunks []bundle.Chunk
	for _, e := range entries {
		if e == nil || (e.Type != "chunk" && e.Modules == nil) {
			continue
		}
		name := "unknown"
		if e.FileName != nil {
			name = *e.FileName
		}
		var size int64
		for _, m := range e.Modules {
			size += m.bytes()
		}
		chunks = append(chunks, bundle.Chunk{Name: name, Size: size, ModuleCount: len(e.Modules)})
	}
	return chunks
}
