// Package treemap computes squarified treemap layouts on a character grid.
//
// # Overview
//
// [Layout] subdivides a W×H grid into one axis-aligned [Cell] per module so
// that each cell's area is proportional to the module's share of the total
// size. It uses the squarified heuristic (Bruls, Huizing, van Wijk): items
// are taken largest first and greedily grouped into rows that are laid out
// as strips along the shorter side of the remaining rectangle. A row keeps
// growing while adding the next item does not worsen the row's worst aspect
// ratio. This keeps cells close to square, which matters far more on a
// coarse character grid than in pixel space.
//
// # Rounding
//
// Layout runs in real coordinates. Each cell edge is rounded to the grid
// independently (halves round up) and the result is clamped so that every
// cell is in bounds and at least 1×1:
//
//	x' = min(x, W-1)
//	w' = max(1, min(w, W-x'))
//
// Independent edge rounding can leave a one-column gap or overlap between
// neighbouring cells in rare fractional cases. The rasterizer tolerates this.
//
// # Degenerate strips
//
// Once the remaining rectangle is less than two cells thick, all unplaced
// items are emitted as one final row; subdividing further cannot produce
// readable cells.
//
// # Usage
//
//	cells := treemap.Layout(mods, 80, 24)
//	for _, c := range cells {
//	    fmt.Println(c.Module.Path, c.X, c.Y, c.W, c.H)
//	}
//
// Layout is a pure function. It sorts a private copy of its input and is
// safe to call concurrently.
package treemap
