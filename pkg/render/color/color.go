// Package color maps module sizes onto a green-yellow-red gradient.
//
// The gradient runs from pure green for the smallest modules through yellow
// at half the maximum to pure red at the maximum. Blue is always zero.
//
// Output always uses 24-bit escape sequences, independent of the terminal
// that happens to be attached. Callers decide whether to colour at all.
package color

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Func wraps text in a colour transform.
type Func func(string) string

// Identity returns s unchanged.
func Identity(s string) string { return s }

var renderer = newRenderer()

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.TrueColor))
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// RGB returns the gradient colour for size relative to largest.
// A zero or negative largest yields green.
func RGB(size, largest int64) (r, g, b uint8) {
	if largest <= 0 {
		return 0, 255, 0
	}
	ratio := math.Min(1, math.Max(0, float64(size)/float64(largest)))
	if ratio < 0.5 {
		return channel(ratio * 2), 255, 0
	}
	return 255, channel(1 - (ratio-0.5)*2), 0
}

// Hex returns the gradient colour for size relative to largest as #rrggbb.
func Hex(size, largest int64) string {
	r, g, b := RGB(size, largest)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ForSize returns a Func that paints text in the gradient colour for size.
// When largest is zero there is nothing to compare against and the text is
// returned unchanged.
func ForSize(size, largest int64) Func {
	if largest == 0 {
		return Identity
	}
	return Paint(Style().Foreground(lipgloss.Color(Hex(size, largest))))
}

// Style returns a style bound to the TrueColor renderer.
func Style() lipgloss.Style {
	return renderer.NewStyle()
}

// Paint adapts a lipgloss style to a Func.
func Paint(style lipgloss.Style) Func {
	return func(s string) string {
		return style.Render(s)
	}
}

func channel(v float64) uint8 {
	return uint8(math.Floor(v*255 + 0.5))
}
