// Package document handles PDF intake ahead of extraction: upload checks,
// structural validation, and recognised-text retrieval. The text recognition
// step itself is a collaborator behind the TextExtractor interface; the
// built-in implementation reads native PDF text and covers digitally
// produced forms, while scanned forms need an external OCR engine.
package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// MinTextLength is the fewest characters of recognised text worth sending to
// the extraction model.
const MinTextLength = 10

// ErrNoText reports that a document produced no usable text.
var ErrNoText = errors.New("document: no usable text could be extracted")

// TextExtractor recognises text in a PDF file. Implementations wrap OCR
// engines or native text extraction.
type TextExtractor interface {
	Text(ctx context.Context, path string) (string, error)
}

// Info summarises an accepted document.
type Info struct {
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
}

// Intake validates uploads and hands their text to the extraction step.
type Intake struct {
	cfg    Config
	logger *slog.Logger
}

// NewIntake creates an Intake with the given configuration.
func NewIntake(cfg Config) *Intake {
	cfg.defaults()
	return &Intake{cfg: cfg, logger: cfg.Logger}
}

// Inspect verifies that the file is an acceptable PDF upload: extension,
// size limit, and structural validity. It returns basic document info
// including the page count.
func (in *Intake) Inspect(path string) (Info, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return Info{}, fmt.Errorf("document: only PDF files are supported, got %q", ext)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("document: stat %s: %w", path, err)
	}
	if stat.Size() > in.cfg.MaxFileSize {
		return Info{}, fmt.Errorf("document: file too large: %d bytes (max %d)", stat.Size(), in.cfg.MaxFileSize)
	}

	pages, err := pageCount(path)
	if err != nil {
		return Info{}, err
	}

	in.logger.Debug("accepted document", "path", path, "size", stat.Size(), "pages", pages)
	return Info{Path: path, Size: stat.Size(), Pages: pages}, nil
}

// Text runs the configured extractor over the document and normalises the
// result. Output shorter than MinTextLength reports ErrNoText.
func (in *Intake) Text(ctx context.Context, path string) (string, error) {
	raw, err := in.cfg.Extractor.Text(ctx, path)
	if err != nil {
		return "", fmt.Errorf("document: text extraction: %w", err)
	}

	cleaned := CleanText(raw)
	if len(cleaned) < MinTextLength {
		return "", ErrNoText
	}

	in.logger.Debug("extracted text", "path", path, "chars", len(cleaned))
	return cleaned, nil
}

// CleanText collapses all runs of whitespace to single spaces and trims the
// result, so downstream prompts see one continuous blob.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
