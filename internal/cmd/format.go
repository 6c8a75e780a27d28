package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/confmark/confmark/internal/config"
	"github.com/confmark/confmark/internal/formatter"
	"github.com/confmark/confmark/internal/ui"
	"github.com/spf13/cobra"
)

var (
	formatInputFile  string
	formatOutputFile string
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format lint results as configuration markup",
	Long: `Read a lint results array (ESLint JSON output format) and write a
configuration-markup summary: run totals first, then one bracketed section
per file with its messages.

Reads from stdin when no input file is given.`,
	Example: `  # Format ESLint output
  eslint --format json src/ | confmark format

  # Read from and write to files
  confmark format -i results.json -o results.conf`,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&formatInputFile, "input", "i", "", "input lint results file (default: stdin or .confmark/config.json input_path)")
	formatCmd.Flags().StringVarP(&formatOutputFile, "output", "o", "", "output file (default: stdout or .confmark/config.json output_path)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	input, output, err := resolvePaths(formatInputFile, formatOutputFile)
	if err != nil {
		return err
	}

	reader, closeReader, err := openInput(input)
	if err != nil {
		return err
	}
	defer closeReader()

	results, err := formatter.DecodeResults(reader)
	if err != nil {
		return err
	}

	out, err := formatter.Format(results, nil)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if verbose {
		ui.PrintOK(fmt.Sprintf("Formatted results for %d file(s)", len(results)))
	}
	return writeOutput(output, out)
}

// resolvePaths fills unset flags from the project config.
func resolvePaths(input, output string) (string, string, error) {
	if input != "" && output != "" {
		return input, output, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", "", err
	}
	if input == "" {
		input = cfg.InputPath
	}
	if output == "" {
		output = cfg.OutputPath
	}
	return input, output, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	ui.PrintOK("Wrote " + path)
	return nil
}
