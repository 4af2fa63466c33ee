package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpatterson933/bunx-ray/pkg/bundle"
	"github.com/jpatterson933/bunx-ray/pkg/snapshot"
)

// snapshotCommand creates the snapshot history management command.
func (c *CLI) snapshotCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage the saved bundle snapshot",
		Long: `Manage the snapshot written by --save-snapshot.

The report compares each run against this snapshot and prints a trend
section listing the modules that grew or shrank.`,
	}
	cmd.PersistentFlags().StringVar(&file, "snapshot-file", "", "snapshot file path (default: "+snapshot.DefaultFile+")")

	open := func() (snapshot.Store, error) {
		dir, err := c.workDir()
		if err != nil {
			return nil, err
		}
		return snapshot.NewFileStore(snapshotPath(dir, file))
	}

	cmd.AddCommand(c.snapshotShowCommand(open))
	cmd.AddCommand(c.snapshotPathCommand(open))
	cmd.AddCommand(c.snapshotClearCommand(open))

	return cmd
}

// snapshotShowCommand creates the "snapshot show" subcommand.
func (c *CLI) snapshotShowCommand(open func() (snapshot.Store, error)) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			snap, found, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !found {
				printInfo(out, "No snapshot saved")
				printDetail(out, "Run bunx-ray --save-snapshot to record one")
				return nil
			}

			printKeyValue(out, "File", store.Path())
			if snap.ID != "" {
				printKeyValue(out, "ID", snap.ID)
			}
			printKeyValue(out, "Saved", snap.Timestamp.Format(time.RFC3339))
			printKeyValue(out, "Modules", strconv.Itoa(len(snap.Modules)))
			printKeyValue(out, "Total", bundle.FormatSize(snap.Total))

			largest := bundle.TopModules(snap.Modules, top)
			if len(largest) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, StyleTitle.Render("Largest modules"))
			for _, m := range largest {
				fmt.Fprintf(out, "  %s  %s\n", bundle.FitLeft(m.Path, 40), bundle.PadLeft(bundle.FormatSize(m.Size), 10))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "list the N largest modules")

	return cmd
}

// snapshotPathCommand creates the "snapshot path" subcommand.
func (c *CLI) snapshotPathCommand(open func() (snapshot.Store, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

// snapshotClearCommand creates the "snapshot clear" subcommand.
func (c *CLI) snapshotClearCommand(open func() (snapshot.Store, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			_, found, err := store.Load(cmd.Context())
			if err != nil {
				printWarning(out, "Snapshot is unreadable, removing it anyway")
				c.Logger.Debug("snapshot load failed", "path", store.Path(), "error", err)
				found = true
			}
			if !found {
				printInfo(out, "No snapshot saved")
				return nil
			}

			if err := store.Delete(cmd.Context()); err != nil {
				return fmt.Errorf("delete snapshot: %w", err)
			}
			printSuccess(out, "Snapshot cleared")
			printDetail(out, "File: %s", store.Path())
			return nil
		},
	}
}
