package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "confmark",
	Short: "confmark - Lint results to configuration-markup formatter",
	Long: `confmark turns structured diagnostic data into human-readable
configuration-markup text: flat keys first, inline arrays, bracketed sections.

Features:
  - Format lint results (ESLint JSON output) as a markup summary
  - Convert arbitrary JSON objects, preserving key order
  - Deterministic, round-trippable output
  - MCP server for AI tool integration`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Core commands
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(initCmd)
	// Note: mcpCmd is registered in mcp.go's init()
}
