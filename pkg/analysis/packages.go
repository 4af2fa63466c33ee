package analysis

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
)

// Package is the combined size of every module an npm package contributed.
type Package struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ModuleCount int    `json:"moduleCount"`
}

// PackageName returns the npm package that owns path, including its scope,
// and false for modules outside node_modules.
func PackageName(path string) (string, bool) {
	i := strings.LastIndex(path, nodeModules)
	if i < 0 {
		return "", false
	}
	rest := path[i+len(nodeModules):]

	if strings.HasPrefix(rest, "@") {
		parts := strings.SplitN(rest, "/", 3)
		if len(parts) >= 2 {
			return parts[0] + "/" + parts[1], true
		}
		return rest, true
	}
	name, _, _ := strings.Cut(rest, "/")
	return name, true
}

// GroupByPackage sums module sizes per package, heaviest first.
// First-party modules are left out.
func GroupByPackage(mods []bundle.Module) []Package {
	var groups []Package
	index := make(map[string]int)
	for _, m := range mods {
		name, ok := PackageName(m.Path)
		if !ok {
			continue
		}
		i, seen := index[name]
		if !seen {
			i = len(groups)
			index[name] = i
			groups = append(groups, Package{Name: name})
		}
		groups[i].Size += m.Size
		groups[i].ModuleCount++
	}

	slices.SortStableFunc(groups, func(a, b Package) int {
		return cmp.Compare(b.Size, a.Size)
	})
	return groups
}

// PackageLines renders a ranked package table. It returns nil when there are
// no packages.
func PackageLines(pkgs []Package) []string {
	if len(pkgs) == 0 {
		return nil
	}
	lines := []string{"Heaviest packages"}
	for i, p := range pkgs {
		lines = append(lines, fmt.Sprintf("%3d  %s  %s  (%d %s)",
			i+1,
			bundle.FitLeft(p.Name, 25),
			bundle.PadLeft(bundle.FormatSize(p.Size), 10),
			p.ModuleCount, bundle.Plural(p.ModuleCount, "module"),
		))
	}
	return lines
}
