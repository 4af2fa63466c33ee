package analysis

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

const nodeModules = "node_modules/"

// DuplicateGroup is one file bundled from two or more locations.
type DuplicateGroup struct {
	Name      string          `json:"name"`
	Instances []bundle.Module `json:"instances"`
	// Wasted is the size of every copy except the largest.
	Wasted int64 `json:"wastedSize"`
}

// CanonicalName returns the part of path after its last node_modules/
// segment, or path itself when it has none.
func CanonicalName(path string) string {
	if i := strings.LastIndex(path, nodeModules); i >= 0 {
		return path[i+len(nodeModules):]
	}
	return path
}

// FindDuplicates groups modules by canonical name and returns the groups
// with more than one instance, most wasteful first.
func FindDuplicates(mods []bundle.Module) []DuplicateGroup {
	var order []string
	byName := make(map[string][]bundle.Module)
	for _, m := range mods {
		name := CanonicalName(m.Path)
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = append(byName[name], m)
	}

	var groups []DuplicateGroup
	for _, name := range order {
		instances := byName[name]
		if len(instances) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{
			Name:      name,
			Instances: instances,
			Wasted:    bundle.TotalSize(instances) - bundle.MaxSize(instances),
		})
	}

	slices.SortStableFunc(groups, func(a, b DuplicateGroup) int {
		return cmp.Compare(b.Wasted, a.Wasted)
	})
	return groups
}

// DuplicateLines renders duplicate groups for the terminal report.
// It returns nil when there are no groups.
func DuplicateLines(groups []DuplicateGroup) []string {
	if len(groups) == 0 {
		return nil
	}

	var wasted int64
	for _, g := range groups {
		wasted += g.Wasted
	}

	lines := []string{fmt.Sprintf("Potential duplicates (%d %s, %s wasted)",
		len(groups), bundle.Plural(len(groups), "group"), bundle.FormatSize(wasted))}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("  %s  (%d copies, %s wasted)",
			g.Name, len(g.Instances), bundle.FormatSize(g.Wasted)))
		for _, inst := range g.Instances {
			lines = append(lines, "    "+inst.Path)
		}
	}
	return lines
}
