package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xmazu/envdoc/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:           "envdoc",
	Short:         "Generate documentation for annotated .env files",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `envdoc - turn an annotated .env file into a markdown table, one row per variable.

Annotate variables with comment lines directly above them:

  # [@responsible=platform-team]
  # [@type=int]
  # [@secret=false]
  # [@policy=required]
  # [@docs=https://wiki.example.com/port]
  # Port the HTTP server listens on
  PORT=8080

Columns: Key, Responsible, Type, Secret, Policy, Default value, Description, Docs.
Repeated annotations are joined with commas.

EXAMPLES:

  envdoc generate .env.example
  envdoc generate --stdout
  envdoc generate --all -o docs/environment.md
  envdoc generate --watch

Get started: envdoc init --help`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = tui.NewLogger(os.Stderr, verbose)
	},
}

var (
	verbose bool
	logger  = tui.NewLogger(os.Stderr, false)
)

func init() {
	rootCmd.SetVersionTemplate("envdoc version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics (skipped lines, rows without '=', discarded annotations)")
}

// SetVersion sets the version string shown by --version (e.g. from ldflags).
func SetVersion(v string) { rootCmd.Version = v }

func version() string {
	if rootCmd.Version == "" {
		return "dev"
	}
	return rootCmd.Version
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Error("✗"), err)
		os.Exit(1)
	}
}
