package cmd

import (
	"fmt"
	"os"

	"github.com/confmark/confmark/internal/config"
	"github.com/confmark/confmark/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	initForce       bool
	skipMCPRegister bool
	registerMCPOnly bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize confmark for the current directory",
	Long: `Create a .confmark/config.json file with default paths for the
format command: where lint results are read from and where markup is written.
Both default to stdin/stdout when left empty.`,
	Run: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config.json")
	initCmd.Flags().BoolVar(&skipMCPRegister, "skip-mcp", false, "Skip MCP server registration prompt")
	initCmd.Flags().BoolVar(&registerMCPOnly, "register-mcp", false, "Register MCP server only (skip config init)")
}

func runInit(cmd *cobra.Command, args []string) {
	// MCP registration only mode
	if registerMCPOnly {
		ui.PrintTitle("MCP", "Registering confmark MCP server")
		promptMCPRegistration()
		return
	}

	if config.Exists() && !initForce {
		ui.PrintWarn("config.json already exists")
		fmt.Println("Use --force flag to overwrite")
		os.Exit(1)
	}

	ui.PrintTitle("Init", "Configure confmark defaults")

	inputPrompt := promptui.Prompt{
		Label:   "Default lint results path (empty for stdin)",
		Default: "",
	}
	inputPath, err := inputPrompt.Run()
	if err != nil {
		fmt.Println("\nSetup cancelled")
		return
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	selectPrompt := promptui.Select{
		Label:     "Default output destination",
		Items:     []string{"stdout", "file"},
		Templates: templates,
		Size:      2,
	}
	index, _, err := selectPrompt.Run()
	if err != nil {
		fmt.Println("\nSetup cancelled")
		return
	}

	outputPath := ""
	if index == 1 {
		outputPrompt := promptui.Prompt{
			Label:   "Output file path",
			Default: "lint-results.conf",
		}
		outputPath, err = outputPrompt.Run()
		if err != nil {
			fmt.Println("\nSetup cancelled")
			return
		}
	}

	cfg := &config.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
	if err := config.Save(cfg); err != nil {
		ui.PrintError(fmt.Sprintf("Failed to write config: %v", err))
		os.Exit(1)
	}

	ui.PrintOK("Created " + config.Path())

	if !skipMCPRegister {
		promptMCPRegistration()
	}
}
