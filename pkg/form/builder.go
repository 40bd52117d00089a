package form

import (
	internalform "github.com/Rejishankar/docform/internal/form"
	"github.com/Rejishankar/docform/pkg/jsonval"
)

// Builder infers display schemas from normalized extraction values.
type Builder interface {
	Build(value jsonval.Value) SchemaNode
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler func(string) string
}

// WithLabeler overrides the default title generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := internalform.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}

	return internalform.New(internalOpts)
}

// Infer is a convenience wrapper: it normalizes the value and builds its
// display schema with default options in one call.
func Infer(value jsonval.Value) SchemaNode {
	return NewBuilder().Build(jsonval.Normalize(value))
}
