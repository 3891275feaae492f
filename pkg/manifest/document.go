package manifest

import (
	"errors"
	"strings"
)

// Document wraps the raw manifest payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("manifest: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("manifest: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the manifest payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Attribute describes one declared attribute of a custom element.
type Attribute struct {
	// Name is the attribute name as written in markup; it may contain hyphens.
	Name string
	// TypeText is the free-form type annotation, e.g. "boolean" or "() => void".
	TypeText string
	// Default is the declared default value, valid only when HasDefault is set.
	Default     string
	HasDefault  bool
	Description string
}

// Element is the parsed descriptor of one custom element.
type Element struct {
	Name       string
	TagName    string
	Attributes []Attribute
	HasSlots   bool
}

// Manifest is the parsed result of a Document: the discovered element names
// in declaration order plus the descriptors that could be resolved for them.
type Manifest struct {
	SchemaVersion string
	// Names lists every class exported as a custom-element definition, deduplicated
	// and in first-seen order.
	Names []string
	// Warnings collects non-fatal observations made while parsing.
	Warnings []string

	elements map[string]Element
}

// NewManifest assembles a Manifest from discovered names and resolved
// descriptors. Descriptors whose name is not in names are ignored.
func NewManifest(schemaVersion string, names []string, elements []Element) Manifest {
	m := Manifest{
		SchemaVersion: schemaVersion,
		Names:         append([]string(nil), names...),
		elements:      make(map[string]Element, len(elements)),
	}
	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}
	for _, el := range elements {
		if _, ok := known[el.Name]; !ok {
			continue
		}
		if _, seen := m.elements[el.Name]; seen {
			continue
		}
		m.elements[el.Name] = el
	}
	return m
}

// Element returns the descriptor for a discovered element name.
func (m Manifest) Element(name string) (Element, bool) {
	el, ok := m.elements[name]
	return el, ok
}

// Has reports whether name is one of the discovered element names.
func (m Manifest) Has(name string) bool {
	for _, candidate := range m.Names {
		if candidate == name {
			return true
		}
	}
	return false
}

// Empty reports whether the manifest defines no custom elements.
func (m Manifest) Empty() bool {
	return len(m.Names) == 0
}

// IsAll reports whether selection requests every element of the manifest.
func IsAll(selection string) bool {
	return strings.EqualFold(strings.TrimSpace(selection), SelectAll)
}

// SelectAll is the selection value that requests every discovered element.
const SelectAll = "All"
