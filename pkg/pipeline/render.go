package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jpatterson933/bunx-ray/pkg/analysis"
	"github.com/jpatterson933/bunx-ray/pkg/render/color"
	"github.com/jpatterson933/bunx-ray/pkg/render/treemap"
	"github.com/jpatterson933/bunx-ray/pkg/report"
	"github.com/jpatterson933/bunx-ray/pkg/snapshot"
)

// Render produces res.Output in the format selected by opts. For text output
// cells is the layout from [GenerateLayout]; other formats ignore it.
func Render(res *Result, cells []treemap.Cell, opts Options) error {
	var buf bytes.Buffer
	var err error

	switch opts.Output {
	case OutputJSON:
		err = writeJSON(&buf, res, opts)
	case OutputMarkdown:
		fmt.Fprintln(&buf, report.Markdown(res.Bundle.Modules, opts.Top))
	default:
		rep := report.RenderCells(res.Bundle.Modules, cells, opts.ReportOptions())
		res.Report = &rep
		writeText(&buf, res, opts)
	}
	if err != nil {
		return err
	}

	res.Output = buf.Bytes()
	return nil
}

func writeJSON(w io.Writer, res *Result, opts Options) error {
	doc := report.NewDocument(report.DocumentInput{
		Modules:    res.Bundle.Modules,
		Top:        opts.Top,
		Chunks:     res.Bundle.Chunks,
		Packages:   res.Packages,
		Duplicates: res.Duplicates,
		Budget:     res.Budget,
	})
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// writeText lays the terminal report out section by section, separating
// sections with blank lines.
func writeText(w io.Writer, res *Result, opts Options) {
	rep := res.Report
	if rep.LegendLine != "" {
		fmt.Fprintln(w, rep.LegendLine)
	}
	if rep.SummaryLine != "" {
		fmt.Fprintln(w, rep.SummaryLine)
	}

	section := func(lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Join(lines, "\n"))
	}

	section(report.ChunkLines(res.Bundle.Chunks))

	fmt.Fprintf(w, "\n%s\n\n", rep.Grid)
	fmt.Fprintln(w, strings.Join(rep.TableLines, "\n"))

	section(analysis.PackageLines(res.Packages))
	section(rep.DuplicateLines)
	if res.Trend != nil {
		section(snapshot.TrendLines(*res.Trend))
	}

	fail := color.Identity
	if opts.Color {
		fail = color.Paint(color.Style().Foreground(lipgloss.Color("1")))
	}
	for _, line := range res.Budget.Lines() {
		if line != "" {
			line = fail(line)
		}
		fmt.Fprintln(w, line)
	}
}
