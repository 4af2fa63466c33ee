package treemap

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

func mod(path string, size int64) bundle.Module {
	return bundle.Module{Path: path, Size: size}
}

// realisticModules is a skewed distribution resembling a small React app.
func realisticModules() []bundle.Module {
	return []bundle.Module{
		mod("src/index.ts", 100),
		mod("node_modules/lodash/lodash.js", 72000),
		mod("src/utils/api.ts", 1500),
		mod("node_modules/react-dom/cjs/react-dom.production.min.js", 69000),
		mod("node_modules/axios/dist/axios.js", 14000),
		mod("src/components/Dashboard.tsx", 7200),
		mod("node_modules/moment/moment.js", 58000),
		mod("node_modules/date-fns/esm/format/index.js", 9500),
		mod("node_modules/react/cjs/react.production.min.js", 6400),
		mod("src/store/index.ts", 4100),
		mod("node_modules/classnames/index.js", 2600),
		mod("src/components/Chart.tsx", 2200),
		mod("src/hooks/useAuth.ts", 900),
		mod("src/App.tsx", 600),
		mod("src/styles/theme.ts", 300),
	}
}

func assertInBounds(t *testing.T, cells []Cell, w, h int) {
	t.Helper()
	for _, c := range cells {
		if c.W < 1 || c.H < 1 {
			t.Errorf("%s: size %dx%d, want at least 1x1", c.Module.Path, c.W, c.H)
		}
		if c.X < 0 || c.Y < 0 {
			t.Errorf("%s: origin (%d,%d) is negative", c.Module.Path, c.X, c.Y)
		}
		if c.X+c.W > w || c.Y+c.H > h {
			t.Errorf("%s: cell %+v exceeds %dx%d grid", c.Module.Path, c, w, h)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	tests := []struct {
		name string
		mods []bundle.Module
		w, h int
	}{
		{name: "nil modules", mods: nil, w: 80, h: 24},
		{name: "zero total", mods: []bundle.Module{mod("a.js", 0), mod("b.js", 0)}, w: 80, h: 24},
		{name: "zero width", mods: []bundle.Module{mod("a.js", 10)}, w: 0, h: 24},
		{name: "zero height", mods: []bundle.Module{mod("a.js", 10)}, w: 80, h: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Layout(tt.mods, tt.w, tt.h); len(got) != 0 {
				t.Errorf("Layout() = %v, want empty", got)
			}
		})
	}
}

func TestLayoutSingleModuleFillsGrid(t *testing.T) {
	sizes := []struct{ w, h int }{{10, 5}, {5, 10}, {80, 24}, {1, 1}, {7, 7}}
	for _, s := range sizes {
		t.Run(fmt.Sprintf("%dx%d", s.w, s.h), func(t *testing.T) {
			m := mod("a.js", 100)
			want := []Cell{{X: 0, Y: 0, W: s.w, H: s.h, Module: m}}
			if diff := cmp.Diff(want, Layout([]bundle.Module{m}, s.w, s.h)); diff != "" {
				t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutKnownArrangements(t *testing.T) {
	tests := []struct {
		name string
		mods []bundle.Module
		w, h int
		want []Cell
	}{
		{
			name: "two modules on a wide grid",
			mods: []bundle.Module{mod("b", 40), mod("a", 60)},
			w:    10, h: 4,
			want: []Cell{
				{X: 0, Y: 0, W: 10, H: 2, Module: mod("a", 60)},
				{X: 0, Y: 2, W: 10, H: 2, Module: mod("b", 40)},
			},
		},
		{
			name: "four equal modules on a square grid",
			mods: []bundle.Module{mod("a", 1), mod("b", 1), mod("c", 1), mod("d", 1)},
			w:    8, h: 8,
			want: []Cell{
				{X: 0, Y: 0, W: 4, H: 4, Module: mod("a", 1)},
				{X: 0, Y: 4, W: 4, H: 4, Module: mod("b", 1)},
				{X: 4, Y: 0, W: 2, H: 8, Module: mod("c", 1)},
				{X: 6, Y: 0, W: 2, H: 8, Module: mod("d", 1)},
			},
		},
		{
			name: "zero-size module still gets a cell",
			mods: []bundle.Module{mod("a", 5), mod("z", 0)},
			w:    10, h: 4,
			want: []Cell{
				{X: 0, Y: 0, W: 10, H: 4, Module: mod("a", 5)},
				{X: 0, Y: 3, W: 10, H: 1, Module: mod("z", 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Layout(tt.mods, tt.w, tt.h)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutEveryModuleGetsVisibleCell(t *testing.T) {
	mods := make([]bundle.Module, 20)
	for i := range mods {
		mods[i] = mod(fmt.Sprintf("mod-%d.js", i), int64(20-i)*1000)
	}

	cells := Layout(mods, 80, 24)
	if len(cells) != len(mods) {
		t.Fatalf("got %d cells, want %d", len(cells), len(mods))
	}
	assertInBounds(t, cells, 80, 24)

	seen := make(map[string]int)
	for _, c := range cells {
		seen[c.Module.Path]++
	}
	for _, m := range mods {
		if seen[m.Path] != 1 {
			t.Errorf("%s appears in %d cells, want 1", m.Path, seen[m.Path])
		}
	}
}

func TestLayoutBoundsAcrossGridSizes(t *testing.T) {
	sizes := []struct{ w, h int }{{60, 20}, {80, 24}, {40, 12}, {120, 40}, {3, 2}, {2, 30}}
	for _, s := range sizes {
		t.Run(fmt.Sprintf("%dx%d", s.w, s.h), func(t *testing.T) {
			cells := Layout(realisticModules(), s.w, s.h)
			if len(cells) != 15 {
				t.Errorf("got %d cells, want 15", len(cells))
			}
			assertInBounds(t, cells, s.w, s.h)
		})
	}
}

func TestLayoutIsTwoDimensional(t *testing.T) {
	cells := Layout(realisticModules(), 80, 24)

	xs := make(map[int]bool)
	ys := make(map[int]bool)
	for _, c := range cells {
		xs[c.X] = true
		ys[c.Y] = true
	}
	if len(xs) < 2 {
		t.Errorf("all cells share x, got %d distinct columns", len(xs))
	}
	if len(ys) < 2 {
		t.Errorf("all cells share y, got %d distinct rows", len(ys))
	}
}

func TestLayoutLargestCellsAreReadable(t *testing.T) {
	cells := Layout(realisticModules(), 80, 24)
	slices.SortStableFunc(cells, func(a, b Cell) int {
		return int(b.Module.Size - a.Module.Size)
	})

	for _, c := range cells[:3] {
		if r := c.AspectRatio(); r >= 20 {
			t.Errorf("%s: aspect ratio %.1f (%dx%d), want < 20", c.Module.Path, r, c.W, c.H)
		}
	}
}

func TestLayoutDoesNotMutateInput(t *testing.T) {
	mods := realisticModules()
	before := slices.Clone(mods)

	first := Layout(mods, 80, 24)
	second := Layout(mods, 80, 24)

	if diff := cmp.Diff(before, mods); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("layout not deterministic (-first +second):\n%s", diff)
	}
}

func TestLayoutOrdersLargestFirst(t *testing.T) {
	cells := Layout(realisticModules(), 80, 24)
	for i := 1; i < len(cells); i++ {
		if cells[i].Module.Size > cells[i-1].Module.Size {
			t.Fatalf("cell %d (%d bytes) follows smaller cell (%d bytes)",
				i, cells[i].Module.Size, cells[i-1].Module.Size)
		}
	}
}

func TestWorstAspectRatio(t *testing.T) {
	tests := []struct {
		name  string
		areas []float64
		side  float64
		want  float64
	}{
		{name: "square", areas: []float64{4}, side: 2, want: 1},
		{name: "two halves", areas: []float64{2, 2}, side: 2, want: 2},
		{name: "long strip", areas: []float64{1}, side: 4, want: 16},
		{name: "empty row", areas: nil, side: 4, want: math.Inf(1)},
		{name: "zero sum", areas: []float64{0}, side: 4, want: math.Inf(1)},
		{name: "zero member", areas: []float64{4, 0}, side: 2, want: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorstAspectRatio(tt.areas, tt.side); got != tt.want {
				t.Errorf("WorstAspectRatio(%v, %v) = %v, want %v", tt.areas, tt.side, got, tt.want)
			}
		})
	}
}

func TestRectShrink(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 10, H: 8}

	if got, want := r.Shrink(Consumed{Axis: AxisX, Amount: 3}), (Rect{X: 4, Y: 2, W: 7, H: 8}); got != want {
		t.Errorf("Shrink(x) = %+v, want %+v", got, want)
	}
	if got, want := r.Shrink(Consumed{Axis: AxisY, Amount: 2.5}), (Rect{X: 1, Y: 4.5, W: 10, H: 5.5}); got != want {
		t.Errorf("Shrink(y) = %+v, want %+v", got, want)
	}
	if r != (Rect{X: 1, Y: 2, W: 10, H: 8}) {
		t.Errorf("Shrink modified receiver: %+v", r)
	}
}

func TestLayoutRow(t *testing.T) {
	row := []Item{{Module: mod("a", 6), Area: 6}, {Module: mod("b", 2), Area: 2}}

	t.Run("tall rect stacks vertically", func(t *testing.T) {
		cells, consumed := layoutRow(row, Rect{W: 2, H: 4}, 2, 4)
		want := []Cell{
			{X: 0, Y: 0, W: 2, H: 3, Module: mod("a", 6)},
			{X: 0, Y: 3, W: 2, H: 1, Module: mod("b", 2)},
		}
		if diff := cmp.Diff(want, cells); diff != "" {
			t.Errorf("cells mismatch (-want +got):\n%s", diff)
		}
		if consumed != (Consumed{Axis: AxisX, Amount: 2}) {
			t.Errorf("consumed = %+v, want x/2", consumed)
		}
	})

	t.Run("wide rect lays out side by side", func(t *testing.T) {
		cells, consumed := layoutRow(row, Rect{W: 4, H: 2}, 4, 2)
		want := []Cell{
			{X: 0, Y: 0, W: 3, H: 2, Module: mod("a", 6)},
			{X: 3, Y: 0, W: 1, H: 2, Module: mod("b", 2)},
		}
		if diff := cmp.Diff(want, cells); diff != "" {
			t.Errorf("cells mismatch (-want +got):\n%s", diff)
		}
		if consumed != (Consumed{Axis: AxisY, Amount: 2}) {
			t.Errorf("consumed = %+v, want y/2", consumed)
		}
	})

	t.Run("collapsed rect yields unit cells", func(t *testing.T) {
		cells, consumed := layoutRow(row, Rect{X: 4, W: 0, H: 0}, 4, 2)
		for _, c := range cells {
			if c.W != 1 || c.H != 1 {
				t.Errorf("cell %+v, want 1x1", c)
			}
		}
		if consumed.Amount != 0 {
			t.Errorf("consumed = %+v, want zero amount", consumed)
		}
	})
}

func TestClampCell(t *testing.T) {
	m := mod("a", 1)
	tests := []struct {
		name       string
		x, y, w, h int
		want       Cell
	}{
		{name: "inside", x: 2, y: 1, w: 3, h: 2, want: Cell{X: 2, Y: 1, W: 3, H: 2, Module: m}},
		{name: "overflows right", x: 8, y: 0, w: 5, h: 1, want: Cell{X: 8, Y: 0, W: 2, H: 1, Module: m}},
		{name: "starts past right edge", x: 12, y: 0, w: 5, h: 3, want: Cell{X: 9, Y: 0, W: 1, H: 3, Module: m}},
		{name: "starts past bottom edge", x: 0, y: 6, w: 2, h: 2, want: Cell{X: 0, Y: 3, W: 2, H: 1, Module: m}},
		{name: "zero size", x: 1, y: 1, w: 0, h: 0, want: Cell{X: 1, Y: 1, W: 1, H: 1, Module: m}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampCell(tt.x, tt.y, tt.w, tt.h, 10, 4, m)
			if got != tt.want {
				t.Errorf("clampCell() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
