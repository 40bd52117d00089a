package document

import "log/slog"

// Config configures the document intake pipeline.
type Config struct {
	// MaxFileSize is the largest upload accepted (default: 25 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// Extractor recognises text from a PDF. Defaults to the built-in
	// native-text extractor; deployments with a real OCR engine plug it in
	// here.
	Extractor TextExtractor `json:"-" yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 25 * 1024 * 1024
	}
	if c.Extractor == nil {
		c.Extractor = NativeText{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
