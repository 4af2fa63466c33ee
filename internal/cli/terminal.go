package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jpatterson933/bunx-ray/pkg/pipeline"
)

// terminal describes where the report is written.
type terminal struct {
	cols int
	rows int
	tty  bool
}

// detectTerminal inspects w. Anything other than a terminal gets the
// default grid and no colour.
func detectTerminal(w io.Writer) terminal {
	t := terminal{cols: pipeline.DefaultCols, rows: pipeline.DefaultRows}
	f, ok := w.(*os.File)
	if !ok {
		return t
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return t
	}
	t.tty = true
	if cols, rows, err := term.GetSize(fd); err == nil {
		if cols > 0 {
			t.cols = cols
		}
		if rows > 0 {
			t.rows = rows
		}
	}
	t.rows = min(t.rows, pipeline.MaxTerminalRows)
	return t
}

// colorEnabled reports whether ANSI colour should be written.
func (c *CLI) colorEnabled(t terminal, noColor bool) bool {
	if noColor || !t.tty {
		return false
	}
	_, set := c.lookup("NO_COLOR")
	return !set
}

// inGitHubActions reports whether the process runs as a GitHub Actions step.
func (c *CLI) inGitHubActions() bool {
	v, _ := c.lookup("GITHUB_ACTIONS")
	return v != ""
}

func (c *CLI) lookup(key string) (string, bool) {
	if c.env == nil {
		return os.LookupEnv(key)
	}
	return c.env(key)
}
