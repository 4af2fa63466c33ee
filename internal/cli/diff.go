package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpatterson933/bunx-ray/pkg/diff"
	"github.com/jpatterson933/bunx-ray/pkg/pipeline"
	"github.com/jpatterson933/bunx-ray/pkg/report"
)

// diffCommand creates the command that compares two builds.
func (c *CLI) diffCommand() *cobra.Command {
	var (
		formats formatFlags
		md      bool
		asJSON  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two builds",
		Long: `Compare the modules of two stats files and list what grew, shrank,
was added or was removed.

Both files must come from the same bundler.`,
		Example: `  bunx-ray diff base/stats.json head/stats.json
  bunx-ray diff base.json head.json --esbuild --md >> "$GITHUB_STEP_SUMMARY"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, c.Logger)
			defer runner.Close()

			res, err := runner.Diff(cmd.Context(), args[0], args[1], formats.format())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(res)
			case md:
				_, err := fmt.Fprintln(out, report.MarkdownDiff(res))
				return err
			}
			colored := c.colorEnabled(detectTerminal(out), noColor)
			printLines(out, diff.Lines(res, colored))
			return nil
		},
	}

	formats.register(cmd)
	cmd.Flags().BoolVar(&md, "md", false, "output as GitHub-flavored Markdown")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	cmd.MarkFlagsMutuallyExclusive("md", "json")

	return cmd
}
