package manifest

import "context"

// Parser turns a Document into a Manifest.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Manifest, error)
}

// DefaultSchemaVersions is the semver constraint a manifest's schemaVersion
// is expected to satisfy. Versions outside it produce a warning, not an error.
const DefaultSchemaVersions = ">= 1.0.0, < 3.0.0"

// ParserOptions exposes parser toggles.
type ParserOptions struct {
	// ValidateShape runs the embedded JSON schema against the payload before
	// elements are extracted. Defaults to true.
	ValidateShape bool

	// SchemaVersions constrains the accepted schemaVersion values.
	SchemaVersions string
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithShapeValidation toggles the embedded schema check.
func WithShapeValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ValidateShape = enabled
	}
}

// WithSchemaVersions overrides the accepted schemaVersion constraint.
func WithSchemaVersions(constraint string) ParserOption {
	return func(opts *ParserOptions) {
		opts.SchemaVersions = constraint
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ValidateShape:  true,
		SchemaVersions: DefaultSchemaVersions,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
