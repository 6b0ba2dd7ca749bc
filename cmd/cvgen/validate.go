package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarbosa/cvgen/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate <input-file>",
	Short: "Validate a CV JSON document against the expected schema",
	Long: `Checks a CV data file against the document schema without generating
anything. Reports every violation with its field path.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	rootCmd.AddCommand(validateCommand)
}

func runValidate(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateCVDocument(content); err != nil {
		return err
	}

	fmt.Printf("✓ CV document is valid: %s\n", args[0])
	return nil
}
