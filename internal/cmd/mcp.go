package cmd

import (
	"github.com/confmark/confmark/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can request markup formatting through stdio.

Tools provided by MCP server:
- format_results: Format a lint results array as configuration markup
- convert_json: Convert a JSON object into configuration markup

Communicates via stdio for integration with Claude Desktop, Claude Code, Cursor, and other MCP clients.`,
	Example: `  confmark mcp`,
	RunE:    runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(version)
	return server.Start(cmd.Context())
}
