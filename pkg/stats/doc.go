// Package stats reads bundler statistics files and normalizes them into
// flat module lists.
//
// # Supported Formats
//
//   - webpack: `webpack --json` output, including multi-compiler `children`
//   - vite: vite-bundle-analyzer style output with per-chunk `modules`
//   - rollup: rollup bundle output where chunks carry `"type": "chunk"`
//   - esbuild: the `--metafile` JSON
//   - tsup: an esbuild metafile produced through tsup
//
// Each format is handled by a [Normalizer]. [Normalize] picks one either from
// an explicit [Format] or by sniffing the top-level keys of the document.
//
// # Usage
//
//	data, err := stats.ReadFile("dist/stats.json")
//	if err != nil {
//	    return err
//	}
//	mods, format, err := stats.Normalize(data, stats.FormatAuto)
//
// Every normalizer returns modules sorted by size, largest first. Ties are
// broken by path so results do not depend on JSON object key order.
package stats
