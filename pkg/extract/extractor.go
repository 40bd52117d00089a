// Package extract holds the AI extraction collaborator: the boundary that
// turns recognised document text into an arbitrary JSON value. The core
// pipeline only depends on the Extractor interface; the Gemini client is the
// default implementation.
package extract

import (
	"context"

	"github.com/Rejishankar/docform/pkg/jsonval"
)

// Extractor turns a blob of recognised text into structured extraction data.
// The returned value has no fixed schema: objects, nested objects, arrays,
// scalars, and nulls are all possible.
type Extractor interface {
	Extract(ctx context.Context, text string) (jsonval.Value, error)
}

// Result is the envelope handed back to HTTP callers, mirroring the upstream
// service contract.
type Result struct {
	Success bool          `json:"success"`
	Data    jsonval.Value `json:"data"`
	Error   string        `json:"error,omitempty"`
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, text string) (jsonval.Value, error)

// Extract implements Extractor.
func (f ExtractorFunc) Extract(ctx context.Context, text string) (jsonval.Value, error) {
	return f(ctx, text)
}
