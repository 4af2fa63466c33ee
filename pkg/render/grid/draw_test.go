package grid

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/render/treemap"
)

func cell(x, y, w, h int, path string, size int64) treemap.Cell {
	return treemap.Cell{X: x, Y: y, W: w, H: h, Module: bundle.Module{Path: path, Size: size}}
}

func lines(s string) []string { return strings.Split(s, "\n") }

const borderGlyphs = "│─┼"

func TestShadeIndex(t *testing.T) {
	tests := []struct {
		name          string
		size, largest int64
		want          int
	}{
		{name: "zero largest", size: 10, largest: 0, want: 0},
		{name: "empty module", size: 0, largest: 100, want: 0},
		{name: "just under a quarter", size: 24, largest: 100, want: 0},
		{name: "quarter", size: 25, largest: 100, want: 1},
		{name: "half", size: 50, largest: 100, want: 2},
		{name: "three quarters", size: 75, largest: 100, want: 3},
		{name: "largest clamps to top", size: 100, largest: 100, want: 3},
		{name: "oversize clamps to top", size: 500, largest: 100, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShadeIndex(tt.size, tt.largest)
			if got != tt.want {
				t.Errorf("ShadeIndex(%d, %d) = %d, want %d", tt.size, tt.largest, got, tt.want)
			}
			if glyph := ShadeFor(tt.size, tt.largest); glyph != Shades[tt.want] {
				t.Errorf("ShadeFor(%d, %d) = %q, want %q", tt.size, tt.largest, glyph, Shades[tt.want])
			}
		})
	}
}

func TestDrawEmptyCells(t *testing.T) {
	got := lines(Draw(nil, 6, 3, DefaultOptions()))
	want := []string{"      ", "      ", "      "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Draw(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawZeroDimensions(t *testing.T) {
	if got := Draw([]treemap.Cell{cell(0, 0, 1, 1, "a", 1)}, 0, 5, Options{}); got != "" {
		t.Errorf("Draw(w=0) = %q, want empty", got)
	}
}

func TestDrawSingleCellFillsGrid(t *testing.T) {
	out := Draw([]treemap.Cell{cell(0, 0, 10, 5, "a", 100)}, 10, 5, DefaultOptions())

	rows := lines(out)
	if len(rows) != 5 {
		t.Fatalf("got %d lines, want 5", len(rows))
	}
	for i, row := range rows {
		if row != strings.Repeat("█", 10) {
			t.Errorf("line %d = %q, want solid fill", i, row)
		}
	}
}

func TestDrawVerticalBorder(t *testing.T) {
	cells := []treemap.Cell{
		cell(0, 0, 5, 4, "left.js", 100),
		cell(5, 0, 5, 4, "right.js", 50),
	}

	got := lines(Draw(cells, 10, 4, DefaultOptions()))
	for i, row := range got {
		if want := "████│▓▓▓▓▓"; row != want {
			t.Errorf("line %d = %q, want %q", i, row, want)
		}
		if r := []rune(row); r[4] != BorderVertical {
			t.Errorf("line %d column 4 = %q, want %q", i, r[4], BorderVertical)
		}
	}
}

func TestDrawBordersDisabled(t *testing.T) {
	cells := []treemap.Cell{
		cell(0, 0, 5, 4, "left.js", 100),
		cell(5, 0, 5, 4, "right.js", 50),
	}

	out := Draw(cells, 10, 4, Options{})
	if strings.ContainsAny(out, borderGlyphs) {
		t.Errorf("output contains border glyphs with borders disabled:\n%s", out)
	}
}

func TestDrawJunctions(t *testing.T) {
	cells := []treemap.Cell{
		cell(0, 0, 2, 2, "a", 4),
		cell(2, 0, 2, 2, "b", 3),
		cell(0, 2, 2, 2, "c", 2),
		cell(2, 2, 2, 2, "d", 1),
	}

	want := []string{
		"█│██",
		"─┼──",
		"▓│▒▒",
		"▓│▒▒",
	}
	if diff := cmp.Diff(want, lines(Draw(cells, 4, 4, DefaultOptions()))); diff != "" {
		t.Errorf("Draw() mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawLabels(t *testing.T) {
	tests := []struct {
		name      string
		cell      treemap.Cell
		w, h      int
		wantLabel bool
	}{
		{name: "large cell", cell: cell(0, 0, 20, 5, "src/components/app.js", 10), w: 20, h: 5, wantLabel: true},
		{name: "minimum size", cell: cell(0, 0, 12, 3, "app.js", 10), w: 12, h: 3, wantLabel: true},
		{name: "too narrow", cell: cell(0, 0, 11, 5, "app.js", 10), w: 11, h: 5, wantLabel: false},
		{name: "too short", cell: cell(0, 0, 20, 2, "app.js", 10), w: 20, h: 2, wantLabel: false},
		{name: "tiny", cell: cell(0, 0, 8, 2, "app.js", 10), w: 8, h: 2, wantLabel: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Draw([]treemap.Cell{tt.cell}, tt.w, tt.h, Options{Labels: true})
			if got := strings.Contains(out, "app.js"); got != tt.wantLabel {
				t.Errorf("label present = %v, want %v:\n%s", got, tt.wantLabel, out)
			}
		})
	}
}

func TestDrawLabelIsCentred(t *testing.T) {
	out := Draw([]treemap.Cell{cell(0, 0, 20, 5, "src/app.js", 10)}, 20, 5, Options{Labels: true})

	rows := lines(out)
	if want := "███████app.js███████"; rows[2] != want {
		t.Errorf("middle line = %q, want %q", rows[2], want)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if strings.Contains(rows[i], "app") {
			t.Errorf("line %d unexpectedly holds the label: %q", i, rows[i])
		}
	}
}

func TestDrawLabelOverridesBorder(t *testing.T) {
	cells := []treemap.Cell{
		cell(0, 0, 12, 3, "abcdefghijklmnop.js", 10),
		cell(12, 0, 4, 3, "z.js", 1),
	}
	rows := lines(Draw(cells, 16, 3, Options{Labels: true, Borders: true}))

	// The truncated label spans columns 1-10; column 11 keeps its border.
	if want := "abcdefghi…"; !strings.Contains(rows[1], want) {
		t.Errorf("middle line = %q, want it to contain %q", rows[1], want)
	}
	if r := []rune(rows[1]); r[11] != BorderVertical {
		t.Errorf("column 11 = %q, want border", r[11])
	}
}

func TestDrawColor(t *testing.T) {
	cells := []treemap.Cell{
		cell(0, 0, 5, 4, "left.js", 100),
		cell(5, 0, 5, 4, "right.js", 50),
	}

	plain := Draw(cells, 10, 4, Options{Borders: true})
	colored := Draw(cells, 10, 4, Options{Borders: true, Color: true})

	if len(colored) <= len(plain) {
		t.Errorf("coloured output (%d bytes) not longer than plain (%d bytes)", len(colored), len(plain))
	}
	if got := ansi.Strip(colored); got != plain {
		t.Errorf("stripped coloured output differs from plain:\n%s\nvs\n%s", got, plain)
	}
	for i, row := range lines(colored) {
		if w := ansi.StringWidth(row); w != 10 {
			t.Errorf("line %d visible width = %d, want 10", i, w)
		}
	}
}

func TestDrawColorLeavesBlanksUntouched(t *testing.T) {
	out := Draw([]treemap.Cell{cell(0, 0, 2, 1, "a", 10)}, 4, 1, Options{Color: true})
	if !strings.HasSuffix(out, "  ") {
		t.Errorf("output %q should end with two uncoloured blanks", out)
	}
}

func TestDrawColorZeroSizesIsPlain(t *testing.T) {
	cells := []treemap.Cell{cell(0, 0, 3, 1, "a", 0)}
	if got, want := Draw(cells, 3, 1, Options{Color: true}), "░░░"; got != want {
		t.Errorf("Draw() = %q, want %q", got, want)
	}
}

func TestDrawClipsOutOfGridCells(t *testing.T) {
	out := Draw([]treemap.Cell{cell(2, 1, 10, 10, "a", 1)}, 4, 3, Options{})
	want := []string{"    ", "  ██", "  ██"}
	if diff := cmp.Diff(want, lines(out)); diff != "" {
		t.Errorf("Draw() mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawTreemapGeometry(t *testing.T) {
	mods := []bundle.Module{
		{Path: "src/index.ts", Size: 71},
		{Path: "src/util.ts", Size: 20},
	}
	cells := treemap.Layout(mods, 30, 8)

	rows := lines(Draw(cells, 30, 8, Options{Borders: true, Labels: true}))
	if len(rows) != 8 {
		t.Fatalf("got %d lines, want 8", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 30 {
			t.Errorf("line %d has %d glyphs, want 30", i, n)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		path  string
		width int
		want  string
	}{
		{path: "src/app.js", width: 10, want: "app.js"},
		{path: "app.js", width: 10, want: "app.js"},
		{path: "src/", width: 10, want: "src/"},
		{path: "node_modules/lodash/averyverylongname.js", width: 10, want: "averyvery…"},
		{path: "dir/überlänge.js", width: 6, want: "überl…"},
		{path: "x.js", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Label(tt.path, tt.width); got != tt.want {
				t.Errorf("Label(%q, %d) = %q, want %q", tt.path, tt.width, got, tt.want)
			}
		})
	}
}
