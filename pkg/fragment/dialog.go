package fragment

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-aemgen/pkg/attribute"
	"github.com/goliatone/go-aemgen/pkg/naming"
)

// Granite resource types used by dialog field descriptors.
const (
	ResourceCheckbox    = "granite/ui/components/coral/foundation/form/checkbox"
	ResourceNumberField = "granite/ui/components/coral/foundation/form/numberfield"
	ResourceMultiField  = "granite/ui/components/coral/foundation/form/multifield"
	ResourceTextField   = "granite/ui/components/coral/foundation/form/textfield"
	ResourceContainer   = "granite/ui/components/coral/foundation/container"
)

// DialogFields renders one field descriptor per static attribute, dispatched
// on its Kind, concatenated in declaration order without separators.
func DialogFields(attrs []attribute.Classified) string {
	var out strings.Builder
	for _, attr := range attrs {
		out.WriteString(DialogField(attr))
	}
	return out.String()
}

// DialogField renders the descriptor for a single attribute. Function-valued
// attributes render as the empty string.
func DialogField(attr attribute.Classified) string {
	label := naming.TitleCase(attr.Name)
	name := "./" + naming.FieldName(attr.Name)

	switch attr.Kind {
	case attribute.Function:
		return ""
	case attribute.Boolean:
		return simpleField(attr, ResourceCheckbox, "checked", label, name)
	case attribute.Numeric:
		return simpleField(attr, ResourceNumberField, "value", label, name)
	case attribute.List:
		return multiField(attr.Name, label, name)
	default:
		return simpleField(attr, ResourceTextField, "value", label, name)
	}
}

// simpleField renders a single-node field. The default value property is
// omitted when the attribute declares no default.
func simpleField(attr attribute.Classified, resourceType, defaultProp, label, name string) string {
	var out strings.Builder
	fmt.Fprintf(&out, "<%s jcr:primaryType=\"nt:unstructured\" sling:resourceType=\"%s\"", attr.Name, resourceType)
	if attr.HasDefault {
		fmt.Fprintf(&out, " %s=\"%s\"", defaultProp, attr.Default)
	}
	fmt.Fprintf(&out, " fieldLabel=\"%s\" name=\"%s\"/>", label, name)
	return out.String()
}

// multiField renders a composite multifield whose single text item is stored
// under the attribute's field name.
func multiField(node, label, name string) string {
	return fmt.Sprintf(`<%[1]s jcr:primaryType="nt:unstructured" sling:resourceType="%[2]s" composite="{Boolean}true" fieldLabel="%[3]s">`+
		`<field jcr:primaryType="nt:unstructured" sling:resourceType="%[4]s" name="%[6]s">`+
		`<items jcr:primaryType="nt:unstructured">`+
		`<column jcr:primaryType="nt:unstructured" sling:resourceType="%[4]s">`+
		`<items jcr:primaryType="nt:unstructured">`+
		`<item jcr:primaryType="nt:unstructured" sling:resourceType="%[5]s" fieldLabel="Item" name="./item"/>`+
		`</items>`+
		`</column>`+
		`</items>`+
		`</field>`+
		`</%[1]s>`,
		node, ResourceMultiField, label, ResourceContainer, ResourceTextField, name)
}
