package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpatterson933/bunx-ray/pkg/budget"
	"github.com/jpatterson933/bunx-ray/pkg/config"
	"github.com/jpatterson933/bunx-ray/pkg/pipeline"
	"github.com/jpatterson933/bunx-ray/pkg/snapshot"
	"github.com/jpatterson933/bunx-ray/pkg/stats"
)

// =============================================================================
// Format Flags
// =============================================================================

// formatFlags selects the stats layout. At most one may be set; none means
// auto-detect.
type formatFlags struct {
	webpack bool
	vite    bool
	rollup  bool
	esbuild bool
	tsup    bool
}

func (f *formatFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.webpack, "webpack", false, "input is Webpack stats")
	fs.BoolVar(&f.vite, "vite", false, "input is Vite/Rollup stats")
	fs.BoolVar(&f.rollup, "rollup", false, "input is Rollup stats")
	fs.BoolVar(&f.esbuild, "esbuild", false, "input is esbuild metafile")
	fs.BoolVar(&f.tsup, "tsup", false, "input is tsup metafile")
	cmd.MarkFlagsMutuallyExclusive("webpack", "vite", "rollup", "esbuild", "tsup")
}

// format returns the selected format, or stats.FormatAuto.
func (f *formatFlags) format() stats.Format {
	switch {
	case f.webpack:
		return stats.FormatWebpack
	case f.vite:
		return stats.FormatVite
	case f.rollup:
		return stats.FormatRollup
	case f.esbuild:
		return stats.FormatEsbuild
	case f.tsup:
		return stats.FormatTsup
	}
	return stats.FormatAuto
}

// =============================================================================
// Report Command
// =============================================================================

// reportFlags holds the root command's flag values.
type reportFlags struct {
	formats formatFlags

	cols int
	rows int
	top  int

	md     bool
	asJSON bool

	noDuplicates   bool
	groupByPackage bool
	saveSnapshot   bool
	snapshotFile   string

	noLegend  bool
	noSummary bool
	gridOnly  bool
	labels    bool
	noBorders bool
	noColor   bool

	size      string
	totalSize string
}

// output returns the pipeline output format selected by --md/--json.
func (f *reportFlags) output() string {
	switch {
	case f.asJSON:
		return pipeline.OutputJSON
	case f.md:
		return pipeline.OutputMarkdown
	}
	return pipeline.OutputText
}

// reportCommand creates the command that renders the bundle heat map.
func (c *CLI) reportCommand() *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   appName + " [stats]",
		Short: "ASCII heat-map bundle viewer",
		Long: `bunx-ray draws a bundle's modules as a squarified treemap in the terminal,
coloured by size, followed by the largest modules, duplicate packages and
size budget violations.

The stats file is detected automatically when omitted. Settings from
.bunxrayrc.json, bunxray.config.json, bunxray.toml or .bunxrayrc.yaml in the
working directory apply wherever a flag is not given.`,
		Example: `  # Auto-detect the stats file and draw the heat map
  bunx-ray

  # Fail CI when a module passes 50KB or the bundle passes 500KB
  bunx-ray dist/stats.json --size 50KB --total-size 500KB

  # Post a report to a pull request
  bunx-ray meta.json --esbuild --md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd, args, f)
		},
	}

	f.formats.register(cmd)

	fs := cmd.Flags()
	fs.IntVar(&f.cols, "cols", pipeline.DefaultCols, "grid columns (default: terminal width)")
	fs.IntVar(&f.rows, "rows", pipeline.DefaultRows, "grid rows (default: terminal height, at most 40)")
	fs.IntVar(&f.top, "top", pipeline.DefaultTop, "show the N largest modules")
	fs.BoolVar(&f.md, "md", false, "output as GitHub-flavored Markdown")
	fs.BoolVar(&f.asJSON, "json", false, "output as JSON")
	fs.BoolVar(&f.noDuplicates, "no-duplicates", false, "hide duplicate module detection")
	fs.BoolVar(&f.groupByPackage, "group-by-package", false, "show the heaviest npm packages")
	fs.BoolVar(&f.saveSnapshot, "save-snapshot", false, "save bundle data to the snapshot file")
	fs.StringVar(&f.snapshotFile, "snapshot-file", "", "snapshot file path (default: "+snapshot.DefaultFile+")")
	fs.BoolVar(&f.noLegend, "no-legend", false, "hide the legend line")
	fs.BoolVar(&f.noSummary, "no-summary", false, "hide the summary line")
	fs.BoolVar(&f.gridOnly, "grid-only", false, "only print the grid (implies --no-legend --no-summary)")
	fs.BoolVar(&f.labels, "labels", false, "show module names on large cells")
	fs.BoolVar(&f.noBorders, "no-borders", false, "hide cell borders")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colors")
	fs.StringVar(&f.size, "size", "", "fail if any module exceeds size (e.g. 50KB)")
	fs.StringVar(&f.totalSize, "total-size", "", "fail if the total bundle exceeds size (e.g. 500KB)")
	cmd.MarkFlagsMutuallyExclusive("md", "json")

	return cmd
}

func (c *CLI) runReport(cmd *cobra.Command, args []string, f *reportFlags) error {
	out := cmd.OutOrStdout()

	dir, err := c.workDir()
	if err != nil {
		return err
	}
	cfg, cfgPath, err := config.Load(dir)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		c.Logger.Debug("loaded config", "path", cfgPath)
	}

	opts, err := c.reportOptions(cmd, args, f, cfg, detectTerminal(out))
	if err != nil {
		return err
	}
	opts.Dir = dir
	if len(args) == 0 && opts.Stats != "" && !filepath.IsAbs(opts.Stats) {
		opts.Stats = filepath.Join(dir, opts.Stats)
	}

	path, found, err := pipeline.ResolveStatsFile(dir, opts.Stats)
	if err != nil {
		return err
	}
	if found {
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if opts.IsText() {
			printInfo(out, "Found %s", rel)
		} else {
			c.Logger.Info("Found stats file", "path", rel)
		}
	}
	opts.Stats = path

	runner, err := c.newRunner(snapshotPath(dir, f.snapshotFile))
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if _, err := out.Write(result.Output); err != nil {
		return err
	}

	if !result.Budget.Failed() {
		return nil
	}
	if c.inGitHubActions() {
		w := out
		if !opts.IsText() {
			w = cmd.ErrOrStderr()
		}
		printLines(w, budget.Annotations(result.Budget.Modules, result.Budget.Total))
	}
	return result.Budget.Err()
}

// reportOptions merges flags, the project config and the terminal into
// pipeline options. A flag given on the command line always wins, then the
// config file, then the terminal size.
func (c *CLI) reportOptions(cmd *cobra.Command, args []string, f *reportFlags, cfg *config.Config, t terminal) (pipeline.Options, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	changed := cmd.Flags().Changed

	opts := pipeline.Options{
		Stats:          cfg.Stats,
		Format:         f.formats.format(),
		Cols:           t.cols,
		Rows:           t.rows,
		Output:         f.output(),
		Top:            f.top,
		NoLegend:       f.noLegend,
		NoSummary:      f.noSummary,
		GridOnly:       f.gridOnly,
		Color:          c.colorEnabled(t, f.noColor),
		Labels:         f.labels,
		NoBorders:      f.noBorders,
		NoDuplicates:   f.noDuplicates,
		GroupByPackage: f.groupByPackage,
		Size:           f.size,
		TotalSize:      f.totalSize,
		SaveSnapshot:   f.saveSnapshot,
		Logger:         c.Logger,
	}
	if len(args) > 0 {
		opts.Stats = args[0]
	}

	if opts.Format == stats.FormatAuto && cfg.Format != "" {
		format, err := stats.ParseFormat(cfg.Format)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}

	switch {
	case changed("cols"):
		opts.Cols = f.cols
	case cfg.Cols != nil:
		opts.Cols = *cfg.Cols
	}
	switch {
	case changed("rows"):
		opts.Rows = f.rows
	case cfg.Rows != nil:
		opts.Rows = *cfg.Rows
	}
	if !changed("top") && cfg.Top != nil {
		opts.Top = *cfg.Top
	}
	if !changed("labels") && cfg.Labels != nil {
		opts.Labels = *cfg.Labels
	}
	if !changed("size") && cfg.Size != "" {
		opts.Size = cfg.Size
	}
	if !changed("total-size") && cfg.TotalSize != "" {
		opts.TotalSize = cfg.TotalSize
	}

	return opts, nil
}

// snapshotPath resolves the history file against dir.
func snapshotPath(dir, file string) string {
	if file == "" {
		file = snapshot.DefaultFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// workDir returns the project directory: c.Dir when set, otherwise the
// process working directory.
func (c *CLI) workDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return os.Getwd()
}
