package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	docform "github.com/Rejishankar/docform"
)

var deriveOutput string

var deriveCmd = &cobra.Command{
	Use:   "derive [file.json]",
	Short: "Derive schema and validation rules from extracted JSON",
	Long: `Reads a raw extraction result (a JSON file, or stdin when omitted),
normalizes it, and prints the derived artifacts: the normalized data tree,
the display schema, and the validation ruleset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().StringVarP(&deriveOutput, "output", "o", "", "output file (stdout if empty)")
}

func runDerive(_ *cobra.Command, args []string) error {
	payload, err := readInput(args)
	if err != nil {
		return err
	}

	derivation, err := docform.DeriveJSON(payload)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(derivation, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(deriveOutput, append(out, '\n'))
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return payload, nil
}

func writeOutput(path string, payload []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return err
	}
	fmt.Printf("written to %s\n", path)
	return nil
}
