package errors

import (
	"strings"
	"unicode"
)

// Grid limits. Anything larger would not fit a terminal and would make the
// rune buffer needlessly large.
const (
	MaxCols = 1000
	MaxRows = 500
)

// ValidateDimensions checks that a heat map of cols×rows can be drawn.
func ValidateDimensions(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return New(ErrCodeInvalidDimensions, "grid must be at least 1x1, got %dx%d", cols, rows)
	}
	if cols > MaxCols || rows > MaxRows {
		return New(ErrCodeInvalidDimensions, "grid too large (max %dx%d), got %dx%d", MaxCols, MaxRows, cols, rows)
	}
	return nil
}

// ValidateTop checks the number of rows requested for the top-modules table.
func ValidateTop(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "--top must not be negative, got %d", n)
	}
	return nil
}

// ValidateFilePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
