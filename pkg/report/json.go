package report

import (
	"math"

	"github.com/jpatterson933/bunx-ray/pkg/analysis"
	"github.com/jpatterson933/bunx-ray/pkg/budget"
	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

// TopModule is a module with its share of the bundle, rounded to one decimal.
type TopModule struct {
	Path string  `json:"path"`
	Size int64   `json:"size"`
	Pct  float64 `json:"pct"`
}

// JSONReport is the machine-readable bundle summary.
type JSONReport struct {
	Total          int64           `json:"total"`
	TotalFormatted string          `json:"totalFormatted"`
	ModuleCount    int             `json:"moduleCount"`
	Modules        []bundle.Module `json:"modules"`
	Top            []TopModule     `json:"top"`
}

// JSON summarises mods with the top n listed separately.
func JSON(mods []bundle.Module, top int) JSONReport {
	total := bundle.TotalSize(mods)
	list := bundle.TopModules(mods, top)

	r := JSONReport{
		Total:          total,
		TotalFormatted: bundle.FormatSize(total),
		ModuleCount:    len(mods),
		Modules:        append([]bundle.Module{}, mods...),
		Top:            make([]TopModule, len(list)),
	}
	for i, m := range list {
		r.Top[i] = TopModule{
			Path: m.Path,
			Size: m.Size,
			Pct:  math.Round(percent(m.Size, total)*10) / 10,
		}
	}
	return r
}

// ModuleViolation is a module over the per-module budget.
type ModuleViolation struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	Limit  int64  `json:"limit"`
	OverBy int64  `json:"overBy"`
}

// Violations lists budget failures. Total is null when the total budget
// holds or was not set.
type Violations struct {
	Modules []ModuleViolation      `json:"modules"`
	Total   *budget.TotalViolation `json:"total"`
}

// Document is the full JSON output of a report run.
type Document struct {
	JSONReport
	Chunks     []bundle.Chunk            `json:"chunks"`
	Packages   []analysis.Package        `json:"packages,omitempty"`
	Duplicates []analysis.DuplicateGroup `json:"duplicates"`
	Violations Violations                `json:"violations"`
}

// DocumentInput carries the analysis results that go into a [Document].
type DocumentInput struct {
	Modules    []bundle.Module
	Top        int
	Chunks     []bundle.Chunk
	Packages   []analysis.Package
	Duplicates []analysis.DuplicateGroup
	Budget     budget.Result
}

// NewDocument assembles the full JSON output. Empty lists are encoded as []
// rather than null, except packages which are omitted.
func NewDocument(in DocumentInput) Document {
	d := Document{
		JSONReport: JSON(in.Modules, in.Top),
		Chunks:     nonNil(in.Chunks),
		Packages:   in.Packages,
		Duplicates: nonNil(in.Duplicates),
		Violations: Violations{
			Modules: make([]ModuleViolation, len(in.Budget.Modules)),
			Total:   in.Budget.Total,
		},
	}
	for i, v := range in.Budget.Modules {
		d.Violations.Modules[i] = ModuleViolation{
			Path:   v.Module.Path,
			Size:   v.Module.Size,
			Limit:  v.Limit,
			OverBy: v.OverBy,
		}
	}
	return d
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
