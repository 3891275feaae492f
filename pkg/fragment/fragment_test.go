package fragment

import (
	"strings"
	"testing"

	"github.com/goliatone/go-aemgen/pkg/attribute"
	"github.com/goliatone/go-aemgen/pkg/manifest"
)

func sampleAttributes() []attribute.Classified {
	return attribute.ClassifyAll([]manifest.Attribute{
		{Name: "disabled", TypeText: "boolean", Default: "false", HasDefault: true},
		{Name: "max-items", TypeText: "number", Default: "5", HasDefault: true},
		{Name: "onClick", TypeText: "() => void", Description: "Fires when clicked"},
	})
}

func TestMarkupAttributes(t *testing.T) {
	got := MarkupAttributes(sampleAttributes())
	want := `disabled="${properties.disabled}" max_items="${properties.max_items}"`
	if got != want {
		t.Fatalf("markup attributes mismatch\nwant: %s\n got: %s", want, got)
	}
	if MarkupAttributes(nil) != "" {
		t.Fatalf("expected empty fragment without attributes")
	}
}

func TestSlot(t *testing.T) {
	if Slot(false) != "" {
		t.Fatalf("expected empty slot fragment")
	}
	if Slot(true) != SlotHint {
		t.Fatalf("expected slot hint")
	}
}

func TestFunctionComment(t *testing.T) {
	got := FunctionComment(sampleAttributes())
	want := "<!-- The following attributes are functions and should be added manually:\nonClick: Fires when clicked -->"
	if got != want {
		t.Fatalf("function comment mismatch\nwant: %q\n got: %q", want, got)
	}

	static := attribute.ClassifyAll([]manifest.Attribute{{Name: "label", TypeText: "string"}})
	if FunctionComment(static) != "" {
		t.Fatalf("expected no comment without function attributes")
	}
}

func TestFunctionCommentListsEachFunction(t *testing.T) {
	attrs := attribute.ClassifyAll([]manifest.Attribute{
		{Name: "onOpen", TypeText: "function"},
		{Name: "label", TypeText: "string"},
		{Name: "onClose", TypeText: "(reason: string) => void", Description: "Closes <b>the</b> panel -- eventually"},
	})
	got := FunctionComment(attrs)
	if strings.Count(got, "<!--") != 1 || strings.Count(got, "-->") != 1 {
		t.Fatalf("expected a single comment, got %q", got)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two lines, got %q", lines)
	}
	if lines[1] != "onOpen:" {
		t.Fatalf("unexpected first entry %q", lines[1])
	}
	if lines[2] != "onClose: Closes the panel - eventually -->" {
		t.Fatalf("unexpected second entry %q", lines[2])
	}
}

func TestSanitizeDescription(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"  plain  ":                 "plain",
		"<script>x</script>visible": "visible",
		"a &amp; b":                 "a & b",
		"multi\nline\ttext":         "multi line text",
		"ends with --":              "ends with -",
		"a---b":                     "a-b",
	}
	for input, want := range cases {
		if got := sanitizeDescription(input); got != want {
			t.Errorf("sanitizeDescription(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDialogFields(t *testing.T) {
	got := DialogFields(sampleAttributes())

	wantCheckbox := `<disabled jcr:primaryType="nt:unstructured" sling:resourceType="` + ResourceCheckbox +
		`" checked="false" fieldLabel="Disabled" name="./disabled"/>`
	wantNumber := `<max-items jcr:primaryType="nt:unstructured" sling:resourceType="` + ResourceNumberField +
		`" value="5" fieldLabel="Max-items" name="./max_items"/>`
	if got != wantCheckbox+wantNumber {
		t.Fatalf("dialog fields mismatch\nwant: %s\n got: %s", wantCheckbox+wantNumber, got)
	}
	if strings.Contains(got, "onClick") {
		t.Fatalf("function attribute must not produce a field: %s", got)
	}
}

func TestDialogField_ListAndText(t *testing.T) {
	attrs := attribute.ClassifyAll([]manifest.Attribute{
		{Name: "tags", TypeText: "string[]"},
		{Name: "heading", TypeText: "string", Default: "Hello", HasDefault: true},
		{Name: "subtitle"},
	})

	list := DialogField(attrs[0])
	for _, fragment := range []string{
		`<tags `, ResourceMultiField, `composite="{Boolean}true"`, `fieldLabel="Tags"`,
		`name="./tags"`, `name="./item"`, ResourceTextField, `</tags>`,
	} {
		if !strings.Contains(list, fragment) {
			t.Errorf("multifield missing %q: %s", fragment, list)
		}
	}

	text := DialogField(attrs[1])
	if !strings.Contains(text, ResourceTextField) || !strings.Contains(text, `value="Hello"`) {
		t.Errorf("unexpected text field: %s", text)
	}

	noDefault := DialogField(attrs[2])
	if strings.Contains(noDefault, "value=") {
		t.Errorf("field without default must omit value: %s", noDefault)
	}
	if !strings.Contains(noDefault, `fieldLabel="Subtitle"`) {
		t.Errorf("missing label: %s", noDefault)
	}
}
