package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// DefaultIndent is the number of spaces used per nesting level.
const DefaultIndent = 4

// ErrMarkupNormalization matches every *NormalizationError via errors.Is.
var ErrMarkupNormalization = errors.New("template: markup normalization failed")

// NormalizationError reports substituted content that is not well-formed.
type NormalizationError struct {
	Artifact string
	Err      error
}

func (e *NormalizationError) Error() string {
	if e.Artifact == "" {
		return fmt.Sprintf("template: normalize: %v", e.Err)
	}
	return fmt.Sprintf("template: normalize %s: %v", e.Artifact, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrMarkupNormalization.
func (e *NormalizationError) Is(target error) bool {
	return target == ErrMarkupNormalization
}

// NormalizeOptions configures markup normalisation.
type NormalizeOptions struct {
	// Indent is the number of spaces per level; zero selects DefaultIndent.
	Indent int
	// ExplicitEndTags keeps <x></x> instead of collapsing empty elements to
	// <x/>. HTML output needs it since custom elements are never void.
	ExplicitEndTags bool
}

// Normalize parses content as markup and re-serialises it with stable
// indentation. The same input always yields byte-identical output.
func Normalize(content string, opts NormalizeOptions) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = false
	if err := doc.ReadFromString(content); err != nil {
		return "", &NormalizationError{Err: err}
	}
	if doc.Root() == nil {
		return "", &NormalizationError{Err: errors.New("document has no root element")}
	}

	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}
	doc.WriteSettings.CanonicalEndTags = opts.ExplicitEndTags
	doc.Indent(indent)

	out, err := doc.WriteToString()
	if err != nil {
		return "", &NormalizationError{Err: err}
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}
