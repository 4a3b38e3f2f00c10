package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/xmazu/envdoc/internal/config"
	"github.com/xmazu/envdoc/internal/render"
	"github.com/xmazu/envdoc/internal/tui"
	"github.com/xmazu/envdoc/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .envdoc.yaml at the workspace root",
	Long: `Create a .envdoc.yaml configuration at the workspace root (monorepo markers,
go.mod, package.json, .git or the current directory).

The input defaults to .env, or to a template such as .env.example when that is
the only env file at the root. When run in a terminal without --output you are
asked where the documentation should be written.`,
	RunE: runInit,
}

var (
	initOutput string
	initFormat string
	initForce  bool
	initYes    bool
)

func init() {
	addInitFlags(initCmd)
	rootCmd.AddCommand(initCmd)
}

func addInitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&initOutput, "output", "o", config.DefaultOutput, "File the documentation is written to")
	cmd.Flags().StringVarP(&initFormat, "format", "F", string(render.FormatMarkdown), "Output format: markdown or html")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing .envdoc.yaml")
	cmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept defaults without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Detect(".")
	if err != nil {
		return fmt.Errorf("find workspace root: %w", err)
	}

	if config.Exists(ws.Root) && !initForce {
		return fmt.Errorf("%s already exists at %s.\n\nUse --force to overwrite it.", config.FileName, ws.Root)
	}

	cfg := config.Default()
	cfg.Format = initFormat
	cfg.Output = initOutput
	if !flagChanged(cmd, "output") && !initYes && isatty.IsTerminal(os.Stdin.Fd()) {
		if cfg.Output, err = tui.PromptOutputPath(config.DefaultOutput); err != nil {
			return err
		}
	}

	if _, err := os.Stat(filepath.Join(ws.Root, config.DefaultInput)); os.IsNotExist(err) {
		if tmpl := findTemplate(ws.Root); tmpl != "" {
			cfg.Input = filepath.Base(tmpl)
		}
	}

	if err := config.Save(ws.Root, cfg); err != nil {
		return fmt.Errorf("write %s: %w", config.FileName, err)
	}

	_, stderr := commandOutputs(cmd)
	fmt.Fprintf(stderr, "%s Created %s\n", tui.Success("✓"), config.Path(ws.Root))
	fmt.Fprintf(stderr, "%s Workspace %s\n", tui.Muted("•"), ws)
	fmt.Fprintf(stderr, "%s input %s, output %s (%s)\n", tui.Muted("•"), cfg.Input, cfg.Output, cfg.Format)
	fmt.Fprintf(stderr, "%s Generate the docs with: %s\n", tui.Muted("Tip:"), tui.Label("envdoc generate"))
	return nil
}
