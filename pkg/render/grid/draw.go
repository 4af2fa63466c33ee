package grid

import (
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/render/color"
	"github.com/jpatterson933/bunx-ray/pkg/render/treemap"
)

// Shades is the four-step gradient from lightest to darkest.
var Shades = [...]rune{'░', '▒', '▓', '█'}

// Border glyphs.
const (
	BorderVertical   = '│'
	BorderHorizontal = '─'
	BorderJunction   = '┼'
)

const (
	blank = ' '
	none  = -1

	labelMinWidth  = 12
	labelMinHeight = 3
)

// Options selects the optional passes.
// The zero value draws shading only.
type Options struct {
	Color   bool
	Labels  bool
	Borders bool
}

// DefaultOptions returns the options used by the command line: borders on,
// labels and colour off.
func DefaultOptions() Options {
	return Options{Borders: true}
}

// ShadeIndex returns the gradient step (0-3) for size relative to largest.
func ShadeIndex(size, largest int64) int {
	if largest == 0 {
		return 0
	}
	idx := int(float64(size) / float64(largest) * float64(len(Shades)))
	return max(0, min(len(Shades)-1, idx))
}

// ShadeFor returns the shade glyph for size relative to largest.
func ShadeFor(size, largest int64) rune {
	return Shades[ShadeIndex(size, largest)]
}

// canvas is the working state of one Draw call.
type canvas struct {
	w, h  int
	buf   []rune
	owner []int
}

func newCanvas(w, h int) *canvas {
	c := &canvas{
		w:     w,
		h:     h,
		buf:   make([]rune, w*h),
		owner: make([]int, w*h),
	}
	for i := range c.buf {
		c.buf[i] = blank
		c.owner[i] = none
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// Draw renders cells onto a w×h grid.
// Cells may come from [treemap.Layout] or be built by hand; positions outside
// the grid are ignored.
func Draw(cells []treemap.Cell, w, h int, opts Options) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	largest := maxCellSize(cells)
	cv := newCanvas(w, h)

	cv.fill(cells, largest)
	if opts.Borders {
		cv.borders()
	}
	if opts.Labels {
		cv.labels(cells)
	}

	var paint func(x, y int) string
	if opts.Color {
		paint = cv.colorizer(cells, largest)
	}
	return cv.String(paint)
}

func maxCellSize(cells []treemap.Cell) int64 {
	var largest int64
	for _, c := range cells {
		largest = max(largest, c.Module.Size)
	}
	return largest
}

// ===== Passes =====

func (cv *canvas) fill(cells []treemap.Cell, largest int64) {
	for i, c := range cells {
		glyph := ShadeFor(c.Module.Size, largest)
		for y := c.Y; y < c.Y+c.H; y++ {
			for x := c.X; x < c.X+c.W; x++ {
				if !cv.inside(x, y) {
					continue
				}
				idx := y*cv.w + x
				cv.buf[idx] = glyph
				cv.owner[idx] = i
			}
		}
	}
}

func (cv *canvas) borders() {
	for y := 0; y < cv.h; y++ {
		for x := 0; x < cv.w; x++ {
			idx := y*cv.w + x
			cur := cv.owner[idx]

			right, below := none, none
			if x+1 < cv.w {
				right = cv.owner[idx+1]
			}
			if y+1 < cv.h {
				below = cv.owner[idx+cv.w]
			}

			diffRight := right != none && cur != right
			diffBelow := below != none && cur != below
			switch {
			case diffRight && diffBelow:
				cv.buf[idx] = BorderJunction
			case diffRight:
				cv.buf[idx] = BorderVertical
			case diffBelow:
				cv.buf[idx] = BorderHorizontal
			}
		}
	}
}

func (cv *canvas) labels(cells []treemap.Cell) {
	for _, c := range cells {
		if c.W < labelMinWidth || c.H < labelMinHeight {
			continue
		}
		text := []rune(Label(c.Module.Path, c.W-2))
		row := c.Y + c.H/2
		col := c.X + (c.W-len(text))/2
		for i, r := range text {
			if cv.inside(col+i, row) {
				cv.buf[row*cv.w+col+i] = r
			}
		}
	}
}

// colorizer returns a painter that wraps owned glyphs in their cell's colour.
func (cv *canvas) colorizer(cells []treemap.Cell, largest int64) func(x, y int) string {
	fns := make([]color.Func, len(cells))
	for i, c := range cells {
		fns[i] = color.ForSize(c.Module.Size, largest)
	}
	return func(x, y int) string {
		idx := y*cv.w + x
		glyph := string(cv.buf[idx])
		if cv.buf[idx] == blank || cv.owner[idx] == none {
			return glyph
		}
		return fns[cv.owner[idx]](glyph)
	}
}

// String joins the buffer into lines. A nil paint writes glyphs verbatim.
func (cv *canvas) String(paint func(x, y int) string) string {
	var sb strings.Builder
	sb.Grow(cv.w*cv.h*3 + cv.h)
	for y := 0; y < cv.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := cv.buf[y*cv.w : (y+1)*cv.w]
		if paint == nil {
			sb.WriteString(string(row))
			continue
		}
		for x := range row {
			sb.WriteString(paint(x, y))
		}
	}
	return sb.String()
}

// Label returns the display name for path: its last segment (or the whole
// path when that is empty) truncated to width runes with a trailing ….
func Label(path string, width int) string {
	name := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 && i < len(path)-1 {
		name = path[i+1:]
	}
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	if width <= 0 {
		return ""
	}
	return string(runes[:width-1]) + bundle.Ellipsis
}
