package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/manifoldco/promptui"
)

// MCPRegistrationConfig represents the MCP configuration structure
// Used for Claude Desktop, Claude Code, Cursor
type MCPRegistrationConfig struct {
	MCPServers map[string]MCPServerConfig `json:"mcpServers"`
}

// VSCodeMCPConfig represents the VS Code MCP configuration structure
type VSCodeMCPConfig struct {
	Servers map[string]MCPServerConfig `json:"servers"`
	Inputs  []interface{}              `json:"inputs,omitempty"`
}

// MCPServerConfig represents a single MCP server configuration
type MCPServerConfig struct {
	Type    string            `json:"type,omitempty"`
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// promptMCPRegistration prompts the user to register confmark as an MCP server
func promptMCPRegistration() {
	items := []string{
		"Claude Desktop (global)",
		"Claude Code (project)",
		"Cursor (project)",
		"VS Code Copilot (project)",
		"All",
		"Skip",
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	prompt := promptui.Select{
		Label:     "Register confmark as an MCP server",
		Items:     items,
		Templates: templates,
		Size:      len(items),
	}

	index, _, err := prompt.Run()
	if err != nil {
		fmt.Println("\nSkipped MCP registration")
		return
	}

	apps := []string{"claude-desktop", "claude-code", "cursor", "vscode"}
	switch {
	case index < len(apps):
		app := apps[index]
		if err := registerMCP(app); err != nil {
			fmt.Printf("Failed to register %s: %v\n", appDisplayName(app), err)
		} else {
			fmt.Printf("\nMCP registration complete. Restart %s to use confmark.\n", appDisplayName(app))
		}
	case index == len(apps): // All
		registered := 0
		for _, app := range apps {
			if registerMCP(app) == nil {
				registered++
			}
		}
		if registered > 0 {
			fmt.Printf("\nMCP registration complete. Registered to %d app(s).\n", registered)
		}
	default: // Skip
		fmt.Println("Skipped MCP registration")
		fmt.Println("Tip: Run 'confmark init --register-mcp' to register MCP later")
	}
}

// registerMCP adds confmark to the MCP config of the specified app.
func registerMCP(app string) error {
	configPath := mcpConfigPath(app)
	if configPath == "" {
		return fmt.Errorf("config path for %s could not be determined", appDisplayName(app))
	}

	// The registered command is this binary, not a package runner.
	command, err := os.Executable()
	if err != nil {
		command = "confmark"
	}

	fmt.Printf("\nConfiguring %s\n", appDisplayName(app))
	fmt.Printf("  Location: %s\n", configPath)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	existing, readErr := os.ReadFile(configPath)
	if readErr == nil {
		// Keep a backup before touching a client's config file.
		backupPath := configPath + ".bak"
		if err := os.WriteFile(backupPath, existing, 0644); err != nil {
			fmt.Printf("  Warning: failed to create backup: %v\n", err)
		}
	}

	server := MCPServerConfig{
		Type:    "stdio",
		Command: command,
		Args:    []string{"mcp"},
	}

	var data []byte
	if app == "vscode" {
		var cfg VSCodeMCPConfig
		if readErr == nil {
			_ = json.Unmarshal(existing, &cfg)
		}
		if cfg.Servers == nil {
			cfg.Servers = make(map[string]MCPServerConfig)
		}
		cfg.Servers["confmark"] = server
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		var cfg MCPRegistrationConfig
		if readErr == nil {
			_ = json.Unmarshal(existing, &cfg)
		}
		if cfg.MCPServers == nil {
			cfg.MCPServers = make(map[string]MCPServerConfig)
		}
		if app == "claude-desktop" {
			// Claude Desktop rejects unknown fields.
			server.Type = ""
		}
		cfg.MCPServers["confmark"] = server
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println("  confmark MCP server registered")
	return nil
}

// mcpConfigPath returns the MCP config file path for the specified app
func mcpConfigPath(app string) string {
	homeDir, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()

	switch app {
	case "claude-desktop":
		switch runtime.GOOS {
		case "windows":
			return filepath.Join(os.Getenv("APPDATA"), "Claude", "claude_desktop_config.json")
		case "darwin":
			return filepath.Join(homeDir, "Library", "Application Support", "Claude", "claude_desktop_config.json")
		case "linux":
			return filepath.Join(homeDir, ".config", "Claude", "claude_desktop_config.json")
		}
		return ""
	case "claude-code":
		return filepath.Join(cwd, ".mcp.json")
	case "cursor":
		return filepath.Join(cwd, ".cursor", "mcp.json")
	case "vscode":
		return filepath.Join(cwd, ".vscode", "mcp.json")
	}
	return ""
}

func appDisplayName(app string) string {
	switch app {
	case "claude-desktop":
		return "Claude Desktop"
	case "claude-code":
		return "Claude Code"
	case "cursor":
		return "Cursor"
	case "vscode":
		return "VS Code/Copilot"
	default:
		return app
	}
}
