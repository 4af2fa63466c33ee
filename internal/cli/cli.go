// Package cli implements the bunx-ray command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jpatterson933/bunx-ray/pkg/buildinfo"
	"github.com/jpatterson933/bunx-ray/pkg/pipeline"
	"github.com/jpatterson933/bunx-ray/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "bunx-ray"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Dir is the project directory searched for stats and config files.
	// Empty means the working directory.
	Dir string

	// env looks up environment variables. Tests replace it.
	env func(string) (string, bool)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		env:    os.LookupEnv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders the bundle report.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.reportCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.diffCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the snapshot file at path.
// An empty path selects the default history file in the working directory.
func (c *CLI) newRunner(path string) (*pipeline.Runner, error) {
	store, err := snapshot.NewFileStore(path)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.Logger), nil
}
