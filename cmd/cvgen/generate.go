package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbarbosa/cvgen/internal/config"
	"github.com/mbarbosa/cvgen/internal/domainerr"
	"github.com/mbarbosa/cvgen/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate [input-file]",
	Short: "Generate a CV PDF from a JSON document",
	Long: `Generates a PDF from a CV data file, applying the configured visual styles
and the translations for the requested language. The input file argument
overrides the data file declared in the configuration.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runGenerate,
}

var (
	generateConfigPath string
	generateLanguage   string
	generateOutput     string
)

func init() {
	generateCommand.Flags().StringVarP(&generateConfigPath, "config", "c", "config/config.json", "Path to the configuration file")
	generateCommand.Flags().StringVarP(&generateLanguage, "language", "l", "", "CV language: pt (Portuguese) or en (English)")
	generateCommand.Flags().StringVarP(&generateOutput, "output", "o", "", "Output PDF file (overrides the computed path)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateLanguage != "" && generateLanguage != "pt" && generateLanguage != "en" {
		return fmt.Errorf("invalid --language %q: must be pt or en", generateLanguage)
	}

	cfg, err := config.Load(generateConfigPath)
	if err != nil {
		return err
	}

	logger, closer, err := pipeline.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}

	service := pipeline.NewService(cfg, logger)
	generatedPath, err := service.Generate(context.Background(), pipeline.Options{
		Language:   generateLanguage,
		InputPath:  inputPath,
		OutputPath: generateOutput,
	})
	if err != nil {
		if domainerr.Is(err) {
			logger.Error(err.Error(), "event", "app_failed", "step", "cli")
			return err
		}
		// Unexpected failures: full detail goes to the log sink only, the
		// user gets a generic line.
		logger.Error("unexpected fatal error while running CLI",
			"event", "app_failed", "step", "cli", "error", err.Error())
		return errors.New("unexpected fatal error; see logs for details")
	}

	fmt.Printf("✓ CV generated successfully: %s\n", generatedPath)
	return nil
}
