// Package artifact defines the table of generated artifacts. Each Spec names
// its template, the producer for every placeholder it fills, and where the
// rendered file lands inside the element's working directory.
package artifact

import (
	"path"

	"github.com/goliatone/go-aemgen/pkg/attribute"
	"github.com/goliatone/go-aemgen/pkg/fragment"
	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/naming"
	"github.com/goliatone/go-aemgen/pkg/template"
)

// Artifact names.
const (
	ContentDescriptor = "content"
	Markup            = "markup"
	DialogDescriptor  = "dialog"
)

// Input is everything a producer may draw from.
type Input struct {
	Element    manifest.Element
	Attributes []attribute.Classified
	Group      string
}

// NewInput classifies the element's attributes once.
func NewInput(el manifest.Element, group string) Input {
	return Input{
		Element:    el,
		Attributes: attribute.ClassifyAll(el.Attributes),
		Group:      group,
	}
}

// Producer computes the substitution text of one placeholder.
type Producer func(Input) string

// Spec describes one generated artifact.
type Spec struct {
	Name        string
	TemplateKey string
	Producers   map[template.Placeholder]Producer
	Normalize   template.NormalizeOptions
	// Path returns the output path relative to the working directory.
	Path func(element string) string
}

// Values runs every producer against in.
func (s Spec) Values(in Input) template.Values {
	values := make(template.Values, len(s.Producers))
	for placeholder, produce := range s.Producers {
		if produce == nil {
			continue
		}
		values[placeholder] = produce(in)
	}
	return values
}

// OutputPath returns the artifact path for element relative to the working
// directory.
func (s Spec) OutputPath(element string) string {
	if s.Path == nil {
		return element
	}
	return s.Path(element)
}

func title(in Input) string { return naming.TitleCase(in.Element.Name) }

func group(in Input) string { return in.Group }

func tag(in Input) string { return in.Element.TagName }

func slot(in Input) string { return fragment.Slot(in.Element.HasSlots) }

// markupAttributes carries its own leading space so an element without
// attributes renders as "<tag>".
func markupAttributes(in Input) string {
	attrs := fragment.MarkupAttributes(in.Attributes)
	if attrs == "" {
		return ""
	}
	return " " + attrs
}

func functionComment(in Input) string { return fragment.FunctionComment(in.Attributes) }

func dialogFields(in Input) string { return fragment.DialogFields(in.Attributes) }

// ContentDescriptorSpec renders the component's .content.xml.
func ContentDescriptorSpec() Spec {
	return Spec{
		Name:        ContentDescriptor,
		TemplateKey: template.KeyContentDescriptor,
		Producers: map[template.Placeholder]Producer{
			template.Title: title,
			template.Group: group,
		},
		Path: func(string) string { return ".content.xml" },
	}
}

// MarkupSpec renders the component's HTL markup file.
func MarkupSpec() Spec {
	return Spec{
		Name:        Markup,
		TemplateKey: template.KeyMarkup,
		Producers: map[template.Placeholder]Producer{
			template.Tag:        tag,
			template.Attributes: markupAttributes,
			template.Slot:       slot,
			template.Comment:    functionComment,
		},
		Normalize: template.NormalizeOptions{ExplicitEndTags: true},
		Path:      func(element string) string { return element + ".html" },
	}
}

// DialogDescriptorSpec renders the authoring dialog.
func DialogDescriptorSpec() Spec {
	return Spec{
		Name:        DialogDescriptor,
		TemplateKey: template.KeyDialogDescriptor,
		Producers: map[template.Placeholder]Producer{
			template.Title:      title,
			template.Attributes: dialogFields,
		},
		Path: func(string) string { return path.Join("_cq_dialog", ".content.xml") },
	}
}
