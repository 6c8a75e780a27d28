package cmd

import (
	"fmt"

	"github.com/confmark/confmark/pkg/markup"
	"github.com/spf13/cobra"
)

var (
	convertInputFile  string
	convertOutputFile string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a JSON object into configuration markup",
	Long: `Convert a JSON document with a top-level object into configuration-markup
text. Key order is preserved; within each level, flat keys are emitted before
bracketed sections.

Values must be strings, integers, booleans, arrays of those, or nested
objects. Anything else (null, fractional numbers, objects inside arrays)
fails with the offending key path.`,
	Example: `  # Convert an ESLint config
  confmark convert -i .eslintrc.json

  # Read from stdin, write to a file
  cat config.json | confmark convert -o config.conf`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInputFile, "input", "i", "", "input JSON file (default: stdin)")
	convertCmd.Flags().StringVarP(&convertOutputFile, "output", "o", "", "output file (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	reader, closeReader, err := openInput(convertInputFile)
	if err != nil {
		return err
	}
	defer closeReader()

	doc, err := markup.FromJSON(reader)
	if err != nil {
		return fmt.Errorf("failed to convert JSON: %w", err)
	}

	out, err := markup.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	return writeOutput(convertOutputFile, out)
}
