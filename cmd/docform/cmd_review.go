package main

import (
	"fmt"

	"github.com/spf13/cobra"

	docform "github.com/Rejishankar/docform"
	"github.com/Rejishankar/docform/pkg/review"
)

var reviewOutput string

var reviewCmd = &cobra.Command{
	Use:   "review <data.json>",
	Short: "Interactively review and correct extracted form data",
	Long: `Derives the form for an extraction result and walks through every field
in the terminal. Each prompt is prefilled with the extracted value and
validated with the field's rule, so the exported tree is always valid.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewOutput, "output", "o", "", "export file (stdout if empty)")
}

func runReview(cmd *cobra.Command, args []string) error {
	payload, err := readInput(args)
	if err != nil {
		return err
	}

	derivation, err := docform.DeriveJSON(payload)
	if err != nil {
		return err
	}

	reviewer := review.New()
	edited, err := reviewer.Run(cmd.Context(), derivation.Schema, derivation.Rules, derivation.Data)
	if err != nil {
		return err
	}

	if errs := derivation.Validate(edited); !errs.Empty() {
		return fmt.Errorf("edited data still fails validation: %v", errs.Flatten())
	}

	out, err := docform.Export(edited)
	if err != nil {
		return err
	}
	return writeOutput(reviewOutput, out)
}
