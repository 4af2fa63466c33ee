package bundle

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	kib = 1024
	mib = 1024 * 1024
)

// Ellipsis marks text that was shortened to fit a column.
const Ellipsis = "…"

// FormatSize renders a byte count as "512 B", "2.0 KB" or "3.5 MB".
// Units are binary (1 KB = 1024 B). Negative deltas keep their sign.
func FormatSize(bytes int64) string {
	abs := bytes
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= mib:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mib)
	case abs >= kib:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kib)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// TruncateLeft keeps the tail of s so that it fits in width runes,
// prefixing the result with an ellipsis when anything was dropped.
func TruncateLeft(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 1 {
		return Ellipsis
	}
	r := []rune(s)
	return Ellipsis + string(r[len(r)-(width-1):])
}

// PadRight pads s with spaces up to width runes.
func PadRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PadLeft left-pads s with spaces up to width runes.
func PadLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// FitLeft truncates s from the left and pads it to exactly width runes.
func FitLeft(s string, width int) string {
	return PadRight(TruncateLeft(s, width), width)
}

// Plural returns word with an "s" appended unless n is one.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
