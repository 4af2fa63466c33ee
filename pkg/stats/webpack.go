package stats

import (
	"encoding/json"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

// Webpack normalizes `webpack --json` output.
//
// Modules come from the top-level `modules` array. Multi-compiler builds have
// no top-level modules; their `children` are normalized recursively instead.
type Webpack struct{}

func (Webpack) Format() Format { return FormatWebpack }

type webpackModule struct {
	Name       *string  `json:"name"`
	Identifier *string  `json:"identifier"`
	Size       *float64 `json:"size"`
	ParsedSize *float64 `json:"parsedSize"`
}

type webpackChunk struct {
	ID      json.RawMessage `json:"id"`
	Names   []string        `json:"names"`
	Files   []string        `json:"files"`
	Size    *float64        `json:"size"`
	Modules json.RawMessage `json:"modules"`
}

func (w Webpack) Modules(doc Document) ([]bundle.Module, error) {
	mods, err := w.collect(doc)
	if err != nil {
		return nil, err
	}
	return sortModules(mods), nil
}

func (w Webpack) collect(doc Document) ([]bundle.Module, error) {
	if isArray(doc["modules"]) {
		var entries []*webpackModule
		if err := json.Unmarshal(doc["modules"], &entries); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed webpack modules")
		}
		mods := make([]bundle.Module, 0, len(entries))
		for _, m := range entries {
			if m == nil {
				continue
			}
			size := firstSize(m.Size, m.ParsedSize)
			name := firstString(m.Name, m.Identifier)
			if size != 0 && name != "" {
				mods = append(mods, bundle.Module{Path: name, Size: size})
			}
		}
		return mods, nil
	}

	if !isArray(doc["children"]) {
		return nil, nil
	}
	var children []Document
	if err := json.Unmarshal(doc["children"], &children); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed webpack children")
	}
	var mods []bundle.Module
	for _, child := range children {
		if child == nil {
			continue
		}
		sub, err := w.collect(child)
		if err != nil {
			return nil, err
		}
		mods = append(mods, sub...)
	}
	return mods, nil
}

// Chunks reads the `chunks` array. A chunk is named after its first name,
// then its first file, then its id.
func (Webpack) Chunks(doc Document) []bundle.Chunk {
	if !isArray(doc["chunks"]) {
		return nil
	}
	var entries []webpackChunk
	if err := json.Unmarshal(doc["chunks"], &entries); err != nil {
		return nil
	}

	chunks := make([]bundle.Chunk, 0, len(entries))
	for _, c := range entries {
		chunks = append(chunks, bundle.Chunk{
			Name:        webpackChunkName(c),
			Size:        firstSize(c.Size),
			ModuleCount: countArray(c.Modules),
		})
	}
	return chunks
}

func webpackChunkName(c webpackChunk) string {
	switch {
	case len(c.Names) > 0:
		return c.Names[0]
	case len(c.Files) > 0:
		return c.Files[0]
	}
	return "chunk-" + idString(c.ID)
}

func countArray(raw json.RawMessage) int {
	if !isArray(raw) {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}
