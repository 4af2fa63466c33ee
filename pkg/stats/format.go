package stats

import (
	"slices"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

// Format identifies a bundler stats layout.
type Format string

// Supported formats. FormatAuto asks [Normalize] to detect the layout.
const (
	FormatAuto    Format = ""
	FormatWebpack Format = "webpack"
	FormatVite    Format = "vite"
	FormatRollup  Format = "rollup"
	FormatEsbuild Format = "esbuild"
	FormatTsup    Format = "tsup"
)

var allFormats = []Format{FormatWebpack, FormatVite, FormatRollup, FormatEsbuild, FormatTsup}

// Formats returns every explicit format in flag order.
func Formats() []Format { return slices.Clone(allFormats) }

// String returns the format name, or "auto" for FormatAuto.
func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}

// ParseFormat converts a user-supplied name into a Format.
// The empty string and "auto" both select detection.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "auto" {
		return FormatAuto, nil
	}
	f := Format(name)
	if slices.Contains(allFormats, f) {
		return f, nil
	}
	return FormatAuto, errors.New(errors.ErrCodeInvalidFormat,
		"unknown stats format %q (expected one of: webpack, vite, rollup, esbuild, tsup)", s)
}
