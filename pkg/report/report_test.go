package report

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/jpatterson933/bunx-ray/pkg/budget"
	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/diff"
	"github.com/jpatterson933/bunx-ray/pkg/render/grid"
)

var sampleMods = []bundle.Module{
	{Path: "node_modules/lodash/index.js", Size: 72000},
	{Path: "node_modules/react/index.js", Size: 6400},
	{Path: "src/components/App.tsx", Size: 2400},
	{Path: "src/utils/api.ts", Size: 1500},
	{Path: "src/index.ts", Size: 820},
}

func defaultOptions() Options {
	return Options{Cols: 40, Rows: 10, Top: 10, Legend: true, Summary: true}
}

func TestRender(t *testing.T) {
	r := Render(sampleMods, defaultOptions())

	lines := strings.Split(r.Grid, "\n")
	if len(lines) != 10 {
		t.Fatalf("grid has %d rows, want 10", len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != 40 {
			t.Errorf("row %d has %d columns, want 40", i, n)
		}
	}

	wantLegend := "Legend  █ >52.7 KB  ▓ 35.2 KB-52.7 KB  ▒ 17.6 KB-35.2 KB  ░ <17.6 KB"
	if r.LegendLine != wantLegend {
		t.Errorf("LegendLine = %q, want %q", r.LegendLine, wantLegend)
	}
	if r.SummaryLine != "Total bundle: 81.2 KB | modules: 5" {
		t.Errorf("SummaryLine = %q", r.SummaryLine)
	}

	if len(r.TableLines) != 6 || r.TableLines[0] != "Top 5 modules" {
		t.Fatalf("TableLines = %q", r.TableLines)
	}
	if want := " 1 █ node_modules/lodash/index.js  70.3 KB (86.6%)"; r.TableLines[1] != want {
		t.Errorf("first row = %q, want %q", r.TableLines[1], want)
	}
	if want := " 5 ░ " + bundle.PadRight("src/index.ts", 28) + "    820 B ( 1.0%)"; r.TableLines[5] != want {
		t.Errorf("last row = %q, want %q", r.TableLines[5], want)
	}
	if r.DuplicateLines != nil {
		t.Errorf("DuplicateLines = %q, want nil when disabled", r.DuplicateLines)
	}
}

func TestRenderToggles(t *testing.T) {
	opts := defaultOptions()
	opts.Legend = false
	opts.Summary = false
	opts.Top = 3

	r := Render(sampleMods, opts)
	if r.LegendLine != "" || r.SummaryLine != "" {
		t.Errorf("legend/summary should be empty, got %q / %q", r.LegendLine, r.SummaryLine)
	}
	if len(r.TableLines) != 4 || r.TableLines[0] != "Top 3 modules" {
		t.Errorf("TableLines = %q, want header plus 3 rows", r.TableLines)
	}
}

func TestRenderLegendHasAllShades(t *testing.T) {
	r := Render(sampleMods, defaultOptions())
	for _, shade := range grid.Shades {
		if !strings.ContainsRune(r.LegendLine, shade) {
			t.Errorf("legend %q missing %c", r.LegendLine, shade)
		}
	}
}

func TestRenderTruncatesLongPaths(t *testing.T) {
	mods := []bundle.Module{{Path: "node_modules/some-very-long-package-name/dist/esm/index.js", Size: 1000}}
	r := Render(mods, defaultOptions())
	row := r.TableLines[1]
	if !strings.Contains(row, bundle.Ellipsis+"dist/esm/index.js") {
		t.Errorf("row %q should keep the path tail", row)
	}
	if !strings.HasSuffix(row, "(100.0%)") {
		t.Errorf("single module row %q should be 100.0%%", row)
	}
}

func TestRenderDuplicates(t *testing.T) {
	mods := append([]bundle.Module{
		{Path: "node_modules/pkg-a/node_modules/lodash/index.js", Size: 70000},
	}, sampleMods...)

	opts := defaultOptions()
	opts.Duplicates = true
	r := Render(mods, opts)
	if len(r.DuplicateLines) == 0 || !strings.HasPrefix(r.DuplicateLines[0], "Potential duplicates") {
		t.Errorf("DuplicateLines = %q", r.DuplicateLines)
	}
}

func TestRenderColor(t *testing.T) {
	opts := defaultOptions()
	plain := Render(sampleMods, opts)
	opts.Color = true
	colored := Render(sampleMods, opts)

	if colored.LegendLine == plain.LegendLine {
		t.Error("coloured legend should differ from plain")
	}
	if got := ansi.Strip(colored.LegendLine); got != plain.LegendLine {
		t.Errorf("stripped legend = %q, want %q", got, plain.LegendLine)
	}
	for i := range plain.TableLines {
		if got := ansi.Strip(colored.TableLines[i]); got != plain.TableLines[i] {
			t.Errorf("row %d stripped = %q, want %q", i, got, plain.TableLines[i])
		}
	}
	if got := ansi.Strip(colored.Grid); got != plain.Grid {
		t.Error("stripped coloured grid should match plain grid")
	}
}

func TestRenderEmptyBundle(t *testing.T) {
	r := Render(nil, defaultOptions())
	if r.TableLines[0] != "Top 0 modules" {
		t.Errorf("header = %q", r.TableLines[0])
	}
	if r.SummaryLine != "Total bundle: 0 B | modules: 0" {
		t.Errorf("SummaryLine = %q", r.SummaryLine)
	}
}

func TestChunkLines(t *testing.T) {
	if lines := ChunkLines([]bundle.Chunk{{Name: "main.js", Size: 100, ModuleCount: 1}}); lines != nil {
		t.Errorf("single chunk should produce no lines, got %q", lines)
	}

	got := ChunkLines([]bundle.Chunk{
		{Name: "main", Size: 5240, ModuleCount: 2},
		{Name: "vendors.js", Size: 98300, ModuleCount: 3},
		{Name: "runtime.js", Size: 300, ModuleCount: 1},
	})
	want := []string{
		"Chunks (3)",
		"  " + bundle.PadRight("vendors.js", 30) + "     96.0 KB  (3 modules)",
		"  " + bundle.PadRight("main", 30) + "      5.1 KB  (2 modules)",
		"  " + bundle.PadRight("runtime.js", 30) + "       300 B  (1 module)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ChunkLines mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown([]bundle.Module{
		{Path: "node_modules/react/index.js", Size: 6500},
		{Path: "node_modules/lodash/index.js", Size: 72000},
	}, 10)

	want := strings.Join([]string{
		"### bunx-ray — Bundle Report",
		"",
		"**Total:** 76.7 KB | **Modules:** 2",
		"",
		"| # | Module | Size | % | |",
		"|---|--------|------|---|---|",
		"| 1 | `node_modules/lodash/index.js` | 70.3 KB | 91.7% | `████████████████` |",
		"| 2 | `node_modules/react/index.js` | 6.3 KB | 8.3% | `█░░░░░░░░░░░░░░░` |",
	}, "\n")
	if diff := cmp.Diff(want, md); diff != "" {
		t.Errorf("Markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdownTop(t *testing.T) {
	md := Markdown(sampleMods, 2)
	rows := 0
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "| ") && strings.Contains(line, "`") {
			rows++
		}
	}
	if rows != 2 {
		t.Errorf("got %d table rows, want 2", rows)
	}
	if !strings.Contains(md, "**Modules:** 5") {
		t.Error("module count should cover every module, not just the top")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		ratio float64
		full  int
	}{
		{0, 0},
		{0.5, 8},
		{1, 16},
		{1.5, 16},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := Bar(tt.ratio)
		if n := strings.Count(bar, "█"); n != tt.full {
			t.Errorf("Bar(%v) has %d full blocks, want %d", tt.ratio, n, tt.full)
		}
		if n := utf8.RuneCountInString(bar); n != 16 {
			t.Errorf("Bar(%v) width = %d, want 16", tt.ratio, n)
		}
	}
}

func TestMarkdownDiff(t *testing.T) {
	r := diff.Compare(
		[]bundle.Module{
			{Path: "lodash.js", Size: 65000},
			{Path: "react.js", Size: 6400},
			{Path: "old-utils.js", Size: 3200},
			{Path: "api.ts", Size: 2000},
		},
		[]bundle.Module{
			{Path: "lodash.js", Size: 72000},
			{Path: "react.js", Size: 6400},
			{Path: "api.ts", Size: 1500},
			{Path: "global.css", Size: 2100},
		},
	)

	want := strings.Join([]string{
		"### bunx-ray — Diff Report",
		"",
		"**Total:** 74.8 KB → 80.1 KB (+5.3 KB, +7.0%)",
		"",
		"#### Changed",
		"| Module | Old | New | Delta | |",
		"|--------|-----|-----|-------|-|",
		"| `lodash.js` | 63.5 KB | 70.3 KB | +6.8 KB (+10.8%) | ▲ |",
		"| `api.ts` | 2.0 KB | 1.5 KB | -500 B (-25.0%) | ▼ |",
		"",
		"#### Added",
		"| Module | Size |",
		"|--------|------|",
		"| `global.css` | 2.1 KB |",
		"",
		"#### Removed",
		"| Module | Size |",
		"|--------|------|",
		"| `old-utils.js` | 3.1 KB |",
		"",
		"*1 unchanged module*",
	}, "\n")
	if d := cmp.Diff(want, MarkdownDiff(r)); d != "" {
		t.Errorf("MarkdownDiff mismatch (-want +got):\n%s", d)
	}
}

func TestJSON(t *testing.T) {
	mods := []bundle.Module{
		{Path: "react.js", Size: 6400},
		{Path: "lodash.js", Size: 72000},
		{Path: "app.js", Size: 2400},
	}
	r := JSON(mods, 2)

	if r.Total != 80800 || r.TotalFormatted != "78.9 KB" || r.ModuleCount != 3 {
		t.Errorf("summary = %d / %q / %d", r.Total, r.TotalFormatted, r.ModuleCount)
	}
	if diff := cmp.Diff(mods, r.Modules); diff != "" {
		t.Errorf("Modules should keep input order (-want +got):\n%s", diff)
	}
	want := []TopModule{
		{Path: "lodash.js", Size: 72000, Pct: 89.1},
		{Path: "react.js", Size: 6400, Pct: 7.9},
	}
	if diff := cmp.Diff(want, r.Top); diff != "" {
		t.Errorf("Top mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDocument(t *testing.T) {
	t.Run("empty collections", func(t *testing.T) {
		data, err := json.Marshal(NewDocument(DocumentInput{Modules: sampleMods, Top: 3}))
		if err != nil {
			t.Fatal(err)
		}
		got := string(data)
		for _, want := range []string{
			`"chunks":[]`,
			`"duplicates":[]`,
			`"violations":{"modules":[],"total":null}`,
			`"moduleCount":5`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("document missing %s:\n%s", want, got)
			}
		}
		if strings.Contains(got, `"packages"`) {
			t.Error("packages should be omitted when empty")
		}
	})

	t.Run("violations", func(t *testing.T) {
		limit := int64(50000)
		total := int64(80000)
		res := budget.Check(sampleMods, budget.Limits{Module: &limit, Total: &total})

		doc := NewDocument(DocumentInput{Modules: sampleMods, Top: 3, Budget: res})
		want := []ModuleViolation{{Path: "node_modules/lodash/index.js", Size: 72000, Limit: 50000, OverBy: 22000}}
		if diff := cmp.Diff(want, doc.Violations.Modules); diff != "" {
			t.Errorf("module violations mismatch (-want +got):\n%s", diff)
		}
		if doc.Violations.Total == nil || doc.Violations.Total.OverBy != 3120 {
			t.Errorf("total violation = %+v, want over by 3120", doc.Violations.Total)
		}
	})
}
