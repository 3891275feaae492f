package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestSubstitute(t *testing.T) {
	tpl := "<{tag} {attributes}>{slot}</{tag}> {unknown} {group}"
	got := Substitute(tpl, Values{
		Tag:        "my-el",
		Attributes: `a="${properties.a}"`,
		Slot:       "",
	})
	want := `<my-el a="${properties.a}"></my-el> {unknown} {group}`
	if got != want {
		t.Fatalf("substitute mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestSubstitute_IgnoresUnrecognisedKeys(t *testing.T) {
	got := Substitute("{custom}", Values{Placeholder("{custom}"): "x"})
	if got != "{custom}" {
		t.Fatalf("unrecognised token must be left untouched: %q", got)
	}
}

func TestSubstitute_SinglePass(t *testing.T) {
	got := Substitute("{title}|{group}", Values{Title: "{group}", Group: "G"})
	if got != "{group}|G" {
		t.Fatalf("replacement text must not be rescanned: %q", got)
	}
}

func TestRender_EmptyMarkupRoundTrip(t *testing.T) {
	store := NewFSStore(nil)
	tpl, err := store.Read(KeyMarkup)
	if err != nil {
		t.Fatalf("read markup template: %v", err)
	}
	values := Values{Tag: "plain-card", Attributes: "", Slot: "", Comment: ""}

	got, err := NewResolver(store).Render(KeyMarkup, values, NormalizeOptions{ExplicitEndTags: true})
	if err != nil {
		t.Fatalf("render markup: %v", err)
	}
	if want := "<plain-card></plain-card>\n"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
	if substituted := strings.ReplaceAll(tpl, string(Tag), "plain-card"); got != strings.NewReplacer(
		string(Attributes), "", string(Slot), "", string(Comment), "",
	).Replace(substituted) {
		t.Fatalf("rendered markup differs from the template with only the tag filled in:\ntemplate: %q\n     got: %q", tpl, got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?><jcr:root xmlns:jcr="http://www.jcp.org/jcr/1.0" jcr:primaryType="nt:unstructured"><items><a x="1"/>   <b/></items></jcr:root>`
	first, err := Normalize(input, NormalizeOptions{})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	second, err := Normalize(input, NormalizeOptions{})
	if err != nil {
		t.Fatalf("normalize again: %v", err)
	}
	if first != second {
		t.Fatalf("normalize is not deterministic:\n%s\n---\n%s", first, second)
	}
	again, err := Normalize(first, NormalizeOptions{})
	if err != nil {
		t.Fatalf("normalize normalized output: %v", err)
	}
	if again != first {
		t.Fatalf("normalize is not idempotent:\n%s\n---\n%s", first, again)
	}
	if !strings.Contains(first, "\n    <items>") || !strings.Contains(first, "\n        <a x=\"1\"/>") {
		t.Fatalf("expected four-space indentation, got:\n%s", first)
	}
	if !strings.HasSuffix(first, "\n") {
		t.Fatalf("expected trailing newline")
	}
}

func TestNormalize_ExplicitEndTags(t *testing.T) {
	out, err := Normalize(`<my-el ></my-el>`, NormalizeOptions{ExplicitEndTags: true})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !strings.Contains(out, "<my-el></my-el>") {
		t.Fatalf("expected explicit end tag, got %q", out)
	}
}

func TestNormalize_Malformed(t *testing.T) {
	for _, input := range []string{
		`<a value="x<y"/>`,
		`<a><b></a>`,
		`just text`,
	} {
		_, err := Normalize(input, NormalizeOptions{})
		if !errors.Is(err, ErrMarkupNormalization) {
			t.Errorf("input %q: expected ErrMarkupNormalization, got %v", input, err)
		}
	}
}

func TestFSStore_Embedded(t *testing.T) {
	store := NewFSStore(nil)
	for _, key := range []string{
		KeyRootDescriptor, KeyVersionedContainer, KeyVersionPointer,
		KeyContentDescriptor, KeyMarkup, KeyDialogDescriptor,
	} {
		tpl, err := store.Read(key)
		if err != nil {
			t.Fatalf("read %s: %v", key, err)
		}
		if strings.TrimSpace(tpl) == "" {
			t.Fatalf("template %s is empty", key)
		}
	}
}

func TestDirStore_Missing(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/tpl/.content.xml", []byte("<root/>"), 0o644); err != nil {
		t.Fatalf("seed template: %v", err)
	}
	store := NewDirStore(mem, "/tpl")

	if tpl, err := store.Read(KeyRootDescriptor); err != nil || tpl != "<root/>" {
		t.Fatalf("read override: %q %v", tpl, err)
	}
	_, err := store.Read(KeyMarkup)
	if !errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}
}

type countingStore struct {
	reads map[string]int
	inner Store
}

func (s *countingStore) Read(key string) (string, error) {
	s.reads[key]++
	return s.inner.Read(key)
}

func TestCachedStore(t *testing.T) {
	counter := &countingStore{reads: map[string]int{}, inner: NewFSStore(nil)}
	store := NewCachedStore(counter)
	for i := 0; i < 3; i++ {
		if _, err := store.Read(KeyVersionPointer); err != nil {
			t.Fatalf("read: %v", err)
		}
	}
	if counter.reads[KeyVersionPointer] != 1 {
		t.Fatalf("expected a single underlying read, got %d", counter.reads[KeyVersionPointer])
	}
	if _, err := store.Read("missing.xml"); !errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}
	if _, err := store.Read("missing.xml"); err == nil {
		t.Fatalf("failed reads must not be cached as successes")
	}
}

func TestResolver_RenderTagsArtifact(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/tpl/bad.xml", []byte(`<a title="{title}"/>`), 0o644); err != nil {
		t.Fatalf("seed template: %v", err)
	}
	resolver := NewResolver(NewDirStore(mem, "/tpl"))

	_, err := resolver.Render("bad.xml", Values{Title: `x"y`}, NormalizeOptions{})
	var normErr *NormalizationError
	if !errors.As(err, &normErr) {
		t.Fatalf("expected NormalizationError, got %v", err)
	}
	if normErr.Artifact != "bad.xml" {
		t.Fatalf("artifact not recorded: %q", normErr.Artifact)
	}

	out, err := resolver.Render("bad.xml", Values{Title: "Ok"}, NormalizeOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<a title="Ok"/>`) {
		t.Fatalf("unexpected output %q", out)
	}
}
