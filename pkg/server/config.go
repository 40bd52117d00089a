package server

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Rejishankar/docform/pkg/document"
	"github.com/Rejishankar/docform/pkg/extract"
)

// Config configures the extraction service.
type Config struct {
	// Addr is the listen address (default: :8000).
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigin is the frontend origin allowed by CORS
	// (default: http://localhost:3000).
	AllowedOrigin string `json:"allowed_origin" yaml:"allowed_origin"`

	// ExportDir, when set, receives exported form data as JSON files.
	ExportDir string `json:"export_dir,omitempty" yaml:"export_dir,omitempty"`

	// Document configures upload validation and text extraction.
	Document document.Config `json:"document" yaml:"document"`

	// Gemini configures the hosted extraction model.
	Gemini extract.GeminiConfig `json:"gemini" yaml:"gemini"`

	// Logger for request and error logging.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if c.AllowedOrigin == "" {
		c.AllowedOrigin = "http://localhost:3000"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfig reads a YAML config file. A missing path yields the zero
// config, which is fully usable through defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("server: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("server: parse config: %w", err)
	}
	return cfg, nil
}
