package treemap

import (
	"math"
	"slices"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

// minSide is the strip thickness below which squarifying stops.
const minSide = 2

// Layout tiles a w×h grid with one cell per module.
//
// Modules are laid out largest first; equal sizes keep their input order.
// Layout returns nil when mods is empty, when the total size is zero or when
// either grid dimension is not positive.
func Layout(mods []bundle.Module, w, h int) []Cell {
	if len(mods) == 0 || w <= 0 || h <= 0 {
		return nil
	}

	sorted := slices.Clone(mods)
	bundle.SortBySize(sorted)

	total := bundle.TotalSize(sorted)
	if total <= 0 {
		return nil
	}

	items := newItems(sorted, total, float64(w*h))
	cells := make([]Cell, 0, len(items))
	rect := Rect{W: float64(w), H: float64(h)}

	var row []Item
	for i := 0; i < len(items); {
		side := rect.ShortSide()
		if side < minSide {
			row = append(row, items[i:]...)
			break
		}

		if len(row) == 0 {
			row = append(row, items[i])
			i++
			continue
		}

		if worstWith(row, items[i].Area, side) <= worst(row, side) {
			row = append(row, items[i])
			i++
			continue
		}

		placed, consumed := layoutRow(row, rect, w, h)
		cells = append(cells, placed...)
		rect = rect.Shrink(consumed)
		row = row[:0:0]
	}

	if len(row) > 0 {
		placed, _ := layoutRow(row, rect, w, h)
		cells = append(cells, placed...)
	}
	return cells
}

func newItems(sorted []bundle.Module, total int64, gridArea float64) []Item {
	items := make([]Item, len(sorted))
	for i, m := range sorted {
		items[i] = Item{
			Module: m,
			Area:   float64(m.Size) / float64(total) * gridArea,
		}
	}
	return items
}

// WorstAspectRatio returns the largest aspect ratio any of areas would have
// when laid out as one strip along a side of the given length.
// Rows with a non-positive sum, and zero-area members, score +Inf.
func WorstAspectRatio(areas []float64, side float64) float64 {
	var sum float64
	for _, a := range areas {
		sum += a
	}
	if sum <= 0 {
		return math.Inf(1)
	}

	s2 := side * side
	sum2 := sum * sum
	var worst float64
	for _, a := range areas {
		if a <= 0 {
			return math.Inf(1)
		}
		worst = max(worst, s2*a/sum2, sum2/(s2*a))
	}
	return worst
}

func worst(row []Item, side float64) float64 {
	return WorstAspectRatio(areasOf(row, 0), side)
}

func worstWith(row []Item, next, side float64) float64 {
	return WorstAspectRatio(append(areasOf(row, 1), next), side)
}

func areasOf(row []Item, extra int) []float64 {
	areas := make([]float64, len(row), len(row)+extra)
	for i, it := range row {
		areas[i] = it.Area
	}
	return areas
}

func rowArea(row []Item) float64 {
	var sum float64
	for _, it := range row {
		sum += it.Area
	}
	return sum
}

// layoutRow places row as a single strip inside rect and reports how much of
// rect the strip used. A tall rectangle (w <= h) gets a vertical strip along
// its left edge; a wide one gets a horizontal strip along its top edge. The
// last item in the strip absorbs the accumulated rounding error.
func layoutRow(row []Item, rect Rect, gridW, gridH int) ([]Cell, Consumed) {
	cells := make([]Cell, 0, len(row))
	area := rowArea(row)
	last := len(row) - 1

	if rect.W <= rect.H {
		stripW := ratio(area, rect.H)
		yOff := rect.Y
		for i, it := range row {
			cellH := rect.Y + rect.H - yOff
			if i != last {
				cellH = ratio(it.Area, stripW)
			}
			x, y := round(rect.X), round(yOff)
			cells = append(cells, clampCell(
				x, y,
				max(1, round(rect.X+stripW)-x),
				max(1, round(yOff+cellH)-y),
				gridW, gridH, it.Module,
			))
			yOff += cellH
		}
		return cells, Consumed{Axis: AxisX, Amount: stripW}
	}

	stripH := ratio(area, rect.W)
	xOff := rect.X
	for i, it := range row {
		cellW := rect.X + rect.W - xOff
		if i != last {
			cellW = ratio(it.Area, stripH)
		}
		x, y := round(xOff), round(rect.Y)
		cells = append(cells, clampCell(
			x, y,
			max(1, round(xOff+cellW)-x),
			max(1, round(rect.Y+stripH)-y),
			gridW, gridH, it.Module,
		))
		xOff += cellW
	}
	return cells, Consumed{Axis: AxisY, Amount: stripH}
}

// clampCell forces a rounded rectangle inside the grid with a positive size.
func clampCell(x, y, w, h, gridW, gridH int, m bundle.Module) Cell {
	cx := max(0, min(x, gridW-1))
	cy := max(0, min(y, gridH-1))
	return Cell{
		X:      cx,
		Y:      cy,
		W:      max(1, min(w, gridW-cx)),
		H:      max(1, min(h, gridH-cy)),
		Module: m,
	}
}

// ratio divides a by b, yielding 0 instead of Inf or NaN when the strip has
// collapsed to nothing.
func ratio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// round rounds half up, matching grid-edge semantics for non-negative
// coordinates.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
