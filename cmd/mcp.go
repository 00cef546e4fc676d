package cmd

import (
	"github.com/huangsam/leaguestat/internal/mcp"
	"github.com/huangsam/leaguestat/schema"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Leaguestat MCP server",
	Long:  `Launch an MCP server that allows AI agents to build league reports via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Tools pass their own export path, so none is read from args here.
		return sharedSetup(rootCtx, schema.JSONOut, nil)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
