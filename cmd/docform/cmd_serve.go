package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rejishankar/docform/pkg/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the extraction HTTP service",
	Long: `Starts the HTTP service: upload a PDF to /extract-pdf, validate edits
against /sessions/{id}/validate, and export the final tree via
/sessions/{id}/export. The Gemini API key is read from GEMINI_API_KEY.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to YAML config file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := server.LoadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}
