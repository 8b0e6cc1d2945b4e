package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the figstyle CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (demo,
// palette), configures logging based on the --verbose flag, and executes
// the command tree. The logger is attached to the context and accessible to
// all commands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "figstyle",
		Short:        "figstyle renders publication-styled scientific figures",
		Long:         `figstyle is a CLI tool around the figstyle plotting style: it renders demonstration figures with the full caption and annotation layout, and inspects the curated color palettes.`,
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
	}

	root.SetVersionTemplate(fmt.Sprintf("figstyle %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newPaletteCmd())

	return root.ExecuteContext(context.Background())
}
