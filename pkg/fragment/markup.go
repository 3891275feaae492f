package fragment

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-aemgen/pkg/attribute"
	"github.com/goliatone/go-aemgen/pkg/naming"
)

const (
	// SlotHint is emitted inside the element when it declares slots.
	SlotHint = "<!-- Add custom (slot) content here -->"

	functionCommentHeader = "The following attributes are functions and should be added manually:"
)

// MarkupAttributes renders one property binding per static attribute, joined
// by a single space in declaration order. Both the markup attribute and the
// bound property use the field name.
func MarkupAttributes(attrs []attribute.Classified) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if !attr.Kind.Static() {
			continue
		}
		field := naming.FieldName(attr.Name)
		parts = append(parts, fmt.Sprintf(`%s="${properties.%s}"`, field, field))
	}
	return strings.Join(parts, " ")
}

// Slot returns SlotHint when hasSlots is set and the empty string otherwise.
func Slot(hasSlots bool) string {
	if hasSlots {
		return SlotHint
	}
	return ""
}

// FunctionComment lists every function-valued attribute with its description
// inside a single markup comment. It returns the empty string when there are
// none.
func FunctionComment(attrs []attribute.Classified) string {
	var out strings.Builder
	for _, attr := range attrs {
		if attr.Kind.Static() {
			continue
		}
		if out.Len() == 0 {
			out.WriteString("<!-- ")
			out.WriteString(functionCommentHeader)
		}
		out.WriteString("\n")
		out.WriteString(attr.Name)
		out.WriteString(":")
		if desc := sanitizeDescription(attr.Description); desc != "" {
			out.WriteString(" ")
			out.WriteString(desc)
		}
	}
	if out.Len() == 0 {
		return ""
	}
	out.WriteString(" -->")
	return out.String()
}
