// Package cli implements the startdeck command-line interface.
//
// Running startdeck without a subcommand opens the interactive dashboard.
// Subcommands cover quick search, import/export, link checking, and the
// REST server. All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// Called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the startdeck CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose bool
		noMouse bool
	)

	root := &cobra.Command{
		Use:          "startdeck",
		Short:        "startdeck is a personal bookmark launcher dashboard",
		Long:         `startdeck organizes bookmarks into categories on pages and lets you reorder them by dragging, from the terminal or over a small REST API.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(noMouse)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("startdeck %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse support; reorder with the keyboard instead")

	root.AddCommand(newSearchCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(context.Background())
}
