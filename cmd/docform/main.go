// docform is the PDF form extraction toolkit: serve the HTTP API, derive a
// display schema and validation ruleset from extracted JSON, and review the
// extracted data interactively before export.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "docform",
	Short: "Derive editable forms from AI-extracted PDF data",
	Long: "docform turns the arbitrary JSON an AI extraction step produces into a\nnormalized data tree, a display schema, and a validation ruleset, and\norchestrates the surrounding upload/extract/edit/export flow.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
