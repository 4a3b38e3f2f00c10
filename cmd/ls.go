package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xmazu/envdoc/internal/config"
	"github.com/xmazu/envdoc/internal/scanner"
	"github.com/xmazu/envdoc/internal/tui"
	"github.com/xmazu/envdoc/internal/workspace"
)

var lsCmd = &cobra.Command{
	Use:   "ls [directory]",
	Short: "List the .env files that generate --all would document",
	Long: `Discover and list .env, .env.* and template files (.env.example, .env.sample, ...)
under the given directory. Without an argument the workspace root is detected
from the current directory. Include and exclude patterns from .envdoc.yaml and
.gitignore'd directories are honoured. Output is a simple tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	var ws *workspace.Workspace
	if len(args) == 1 {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve directory: %w", err)
		}
		ws = &workspace.Workspace{Root: root, Marker: workspace.FindMarker(root)}
	} else {
		var err error
		if ws, err = workspace.Detect("."); err != nil {
			return fmt.Errorf("detect workspace: %w", err)
		}
	}

	info, err := os.Stat(ws.Root)
	if err != nil {
		return fmt.Errorf("directory %s: %w", ws.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", ws.Root)
	}

	cfg, err := config.Load(ws.Root)
	if err != nil {
		return err
	}
	filter, err := scanner.NewFilter(ws.Root, cfg.Include, cfg.Exclude)
	if err != nil {
		return err
	}
	files, err := workspace.ListEnvFiles(ws.Root, filter)
	if err != nil {
		return fmt.Errorf("list .env files: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, ws.Rel(f))
	}

	stdout, _ := commandOutputs(cmd)
	if ws.IsMarked() {
		fmt.Fprintf(stdout, "%s%s\n\n", tui.Label("Workspace: "), ws)
	}

	workspace.PrintEnvTree(stdout, workspace.BuildEnvTree(paths), func(n *workspace.EnvTreeNode) string {
		if workspace.IsTemplate(n.Name) {
			return n.Name + " " + tui.Muted("(template)")
		}
		return n.Name
	})
	return nil
}
