package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	docform "github.com/Rejishankar/docform"
	"github.com/Rejishankar/docform/pkg/document"
	"github.com/Rejishankar/docform/pkg/extract"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract form data from a PDF and derive its artifacts",
	Long: `Validates the PDF, extracts its text, sends it to the extraction model,
and prints the derived artifacts. The Gemini API key is read from
GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (stdout if empty)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	intake := document.NewIntake(document.Config{Logger: logger})

	if _, err := intake.Inspect(args[0]); err != nil {
		return err
	}
	text, err := intake.Text(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	extractor, err := extract.NewGemini(extract.GeminiConfig{APIKey: apiKey, Logger: logger})
	if err != nil {
		return err
	}
	value, err := extractor.Extract(cmd.Context(), text)
	if err != nil {
		return err
	}

	derivation := docform.Derive(value)
	out, err := json.MarshalIndent(derivation, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(extractOutput, append(out, '\n'))
}
