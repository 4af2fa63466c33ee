// Package budget enforces size limits on bundle modules.
//
// Two limits exist: a per-module limit (--size) that every module must stay
// under, and a total limit (--total-size) for the sum of all modules. Limits
// are written as human sizes such as "50KB" or "1.5MB" and parsed by
// [ParseSize].
//
// [Check] runs both and reports whether the build failed. The Format* and
// [Annotations] helpers turn the result into terminal text and GitHub
// Actions workflow commands respectively.
package budget

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/errors"
)

var sizePattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(B|KB|MB|GB)?$`)

var multipliers = map[string]float64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
}

// ParseSize converts "50KB", "1.5 mb" or "500" (bytes) to a byte count.
// Units are binary and the result is rounded to the nearest byte.
func ParseSize(input string) (int64, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return 0, errors.New(errors.ErrCodeInvalidSize,
			"Invalid size format: %q. Use e.g. 50KB, 1MB, 500B", input)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidSize, err, "Invalid size format: %q", input)
	}
	unit := strings.ToUpper(m[2])
	if unit == "" {
		unit = "B"
	}
	return int64(math.Round(value * multipliers[unit])), nil
}

// Violation is a module larger than the per-module limit.
type Violation struct {
	Module bundle.Module
	Limit  int64
	OverBy int64
}

// TotalViolation reports a bundle whose total exceeds the total limit.
type TotalViolation struct {
	Total  int64 `json:"totalModuleSize"`
	Limit  int64 `json:"moduleSize"`
	OverBy int64 `json:"overBy"`
}

// CheckModules returns every module larger than limit, largest first.
func CheckModules(mods []bundle.Module, limit int64) []Violation {
	var out []Violation
	for _, m := range mods {
		if m.Size > limit {
			out = append(out, Violation{Module: m, Limit: limit, OverBy: m.Size - limit})
		}
	}
	slices.SortStableFunc(out, func(a, b Violation) int {
		switch {
		case a.Module.Size > b.Module.Size:
			return -1
		case a.Module.Size < b.Module.Size:
			return 1
		}
		return 0
	})
	return out
}

// CheckTotal returns a violation when the summed size exceeds limit.
func CheckTotal(mods []bundle.Module, limit int64) *TotalViolation {
	total := bundle.TotalSize(mods)
	if total <= limit {
		return nil
	}
	return &TotalViolation{Total: total, Limit: limit, OverBy: total - limit}
}

// Limits holds the parsed budget. A nil field disables that check.
type Limits struct {
	Module *int64
	Total  *int64
}

// ParseLimits parses the --size and --total-size values. Empty strings leave
// the corresponding limit unset.
func ParseLimits(size, totalSize string) (Limits, error) {
	var l Limits
	if size != "" {
		v, err := ParseSize(size)
		if err != nil {
			return Limits{}, err
		}
		l.Module = &v
	}
	if totalSize != "" {
		v, err := ParseSize(totalSize)
		if err != nil {
			return Limits{}, err
		}
		l.Total = &v
	}
	return l, nil
}

// Enabled reports whether any limit is set.
func (l Limits) Enabled() bool { return l.Module != nil || l.Total != nil }

// Result is the outcome of checking a build against its limits.
type Result struct {
	Limits  Limits
	Modules []Violation
	Total   *TotalViolation
}

// Failed reports whether any limit was exceeded.
func (r Result) Failed() bool { return len(r.Modules) > 0 || r.Total != nil }

// Check applies both limits to mods.
func Check(mods []bundle.Module, limits Limits) Result {
	r := Result{Limits: limits}
	if limits.Module != nil {
		r.Modules = CheckModules(mods, *limits.Module)
	}
	if limits.Total != nil {
		r.Total = CheckTotal(mods, *limits.Total)
	}
	return r
}

// Err returns a BUDGET_EXCEEDED error when the result failed, nil otherwise.
func (r Result) Err() error {
	if !r.Failed() {
		return nil
	}
	var parts []string
	if n := len(r.Modules); n > 0 {
		parts = append(parts, strconv.Itoa(n)+" "+bundle.Plural(n, "module")+" over limit")
	}
	if r.Total != nil {
		parts = append(parts, "total over limit by "+bundle.FormatSize(r.Total.OverBy))
	}
	return errors.New(errors.ErrCodeBudgetExceeded, "size budget exceeded: %s", strings.Join(parts, ", "))
}
