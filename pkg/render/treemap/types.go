package treemap

import "github.com/jpatterson933/bunx-ray/pkg/bundle"

// Cell is a module's rectangle on the character grid.
// Coordinates are in grid units with the origin at the top-left corner.
type Cell struct {
	X, Y   int
	W, H   int
	Module bundle.Module
}

// Area returns the number of grid positions covered by the cell.
func (c Cell) Area() int { return c.W * c.H }

// AspectRatio returns max(w/h, h/w); 1 is a perfect square.
func (c Cell) AspectRatio() float64 {
	w, h := float64(c.W), float64(c.H)
	return max(w/h, h/w)
}

// Rect is the still unallocated region of the grid in real coordinates.
type Rect struct {
	X, Y, W, H float64
}

// ShortSide returns the length of the rectangle's shorter side.
func (r Rect) ShortSide() float64 { return min(r.W, r.H) }

// Shrink returns the rectangle left over after a strip was consumed.
func (r Rect) Shrink(c Consumed) Rect {
	switch c.Axis {
	case AxisX:
		r.X += c.Amount
		r.W -= c.Amount
	case AxisY:
		r.Y += c.Amount
		r.H -= c.Amount
	}
	return r
}

// Item is a module paired with its target area in grid units.
type Item struct {
	Module bundle.Module
	Area   float64
}

// Axis names the dimension a strip was cut from.
type Axis string

const (
	// AxisX means a vertical strip was taken from the left edge.
	AxisX Axis = "x"
	// AxisY means a horizontal strip was taken from the top edge.
	AxisY Axis = "y"
)

// Consumed reports how much of the remaining rectangle a row used.
type Consumed struct {
	Axis   Axis
	Amount float64
}
