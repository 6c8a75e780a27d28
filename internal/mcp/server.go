// Package mcp exposes the formatter over the Model Context Protocol so
// LLM-based tools can request markup output without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/confmark/confmark/internal/formatter"
	"github.com/confmark/confmark/pkg/markup"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server is a MCP (Model Context Protocol) server.
// It communicates via JSON-RPC over stdio.
type Server struct {
	version string
}

// NewServer creates a new MCP server instance.
func NewServer(version string) *Server {
	return &Server{version: version}
}

// FormatResultsInput represents the input schema for the format_results tool.
type FormatResultsInput struct {
	Path        string `json:"path,omitempty" jsonschema:"Path to a lint results JSON file (ESLint output format). Leave empty when passing results_json"`
	ResultsJSON string `json:"results_json,omitempty" jsonschema:"Inline lint results JSON array. Used when path is empty"`
}

// ConvertJSONInput represents the input schema for the convert_json tool.
type ConvertJSONInput struct {
	Path string `json:"path,omitempty" jsonschema:"Path to a JSON file with a top-level object. Leave empty when passing json"`
	JSON string `json:"json,omitempty" jsonschema:"Inline JSON object. Used when path is empty"`
}

// Start runs a spec-compliant MCP server over stdio using the official go-sdk.
func (s *Server) Start(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "confmark",
		Version: s.version,
	}, nil)

	// Tool: format_results
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "format_results",
		Description: "Format a lint results array (ESLint JSON output) as a configuration-markup document with per-file sections.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input FormatResultsInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		source, err := readSource(input.Path, input.ResultsJSON)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}

		results, err := formatter.DecodeResults(strings.NewReader(source))
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}

		out, err := formatter.Format(results, nil)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, textResult(out), nil
	})

	// Tool: convert_json
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "convert_json",
		Description: "Convert a JSON object (e.g. an .eslintrc.json) into configuration-markup text, preserving key order.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ConvertJSONInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		source, err := readSource(input.Path, input.JSON)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}

		doc, err := markup.FromJSON(strings.NewReader(source))
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}

		out, err := markup.MarshalString(doc)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, textResult(out), nil
	})

	fmt.Fprintln(os.Stderr, "confmark MCP server started (stdio mode)")
	fmt.Fprintln(os.Stderr, "Available tools: format_results, convert_json")

	// Run the server over stdio until the client disconnects
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

// readSource resolves a tool input to raw JSON text, preferring the file path.
func readSource(path, inline string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
	if inline == "" {
		return "", fmt.Errorf("either a path or inline JSON is required")
	}
	return inline, nil
}

// textResult wraps text in the MCP content shape:
// { content: [{type:"text", text:"..."}] }.
func textResult(text string) map[string]any {
	return map[string]any{
		"content": []any{
			map[string]any{"type": "text", "text": text},
		},
	}
}
