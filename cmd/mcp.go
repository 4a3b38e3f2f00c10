package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xmazu/envdoc/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio) for AI/IDE integration",
	Long: `Run the Model Context Protocol server on stdio. Exposes generate_env_docs
(render the variables table for an .env file as markdown or HTML) and
list_env_files (the .env files of a workspace). Logs go to stderr.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}
	return mcpserver.Run(ctx, version(), logger)
}
