// Package attribute classifies declared element attributes by the kind of
// value they carry. Every render site switches on Kind instead of re-reading
// the attribute's free-form type text.
package attribute

import (
	"strings"

	"github.com/goliatone/go-aemgen/pkg/manifest"
)

// Kind is the semantic classification of an attribute.
type Kind int

const (
	// Text is the fallback for any type text that is not recognised.
	Text Kind = iota
	Boolean
	Numeric
	List
	// Function attributes cannot be expressed as static markup or dialog
	// fields and only appear in the manual-wiring comment.
	Function
)

var kindNames = [...]string{
	Text:     "text",
	Boolean:  "boolean",
	Numeric:  "numeric",
	List:     "list",
	Function: "function",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Static reports whether attributes of this kind can be rendered into markup
// and dialog fields.
func (k Kind) Static() bool {
	return k != Function
}

// ClassifyType maps a type annotation to its Kind. Matching is
// case-insensitive; Function is checked first.
func ClassifyType(typeText string) Kind {
	text := strings.ToLower(strings.TrimSpace(typeText))
	switch {
	case text == "function" || strings.Contains(text, "=>"):
		return Function
	case text == "boolean":
		return Boolean
	case text == "number":
		return Numeric
	case text == "array" || strings.Contains(text, "[]"):
		return List
	default:
		return Text
	}
}

// Classify returns the Kind of attr.
func Classify(attr manifest.Attribute) Kind {
	return ClassifyType(attr.TypeText)
}

// Classified pairs an attribute with its resolved Kind.
type Classified struct {
	manifest.Attribute
	Kind Kind
}

// ClassifyAll resolves the Kind of every attribute once, preserving
// declaration order.
func ClassifyAll(attrs []manifest.Attribute) []Classified {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Classified, len(attrs))
	for i, attr := range attrs {
		out[i] = Classified{Attribute: attr, Kind: Classify(attr)}
	}
	return out
}
