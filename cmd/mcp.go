package cmd

import (
	"github.com/huangsam/compareview/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [file]",
	Short: "Start the compareview MCP server",
	Long: `Launch an MCP server that lets AI agents compare items, format values
and read chart shares via standard tools. The optional file becomes the
default document for every tool call.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
