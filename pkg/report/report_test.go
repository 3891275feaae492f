package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/orchestrator"
	"github.com/goliatone/go-aemgen/pkg/report"
	"github.com/goliatone/go-aemgen/pkg/template"
)

func sampleSummary() orchestrator.Summary {
	return orchestrator.Summary{Results: []orchestrator.Result{
		{Element: "FooBar", Files: []string{"a", "b", "c", "d"}},
		{Element: "BrokenLabel", Err: &orchestrator.ElementError{
			Element: "BrokenLabel",
			Err:     &template.NormalizationError{Artifact: "dialog", Err: errors.New("unescaped <\ninside quoted string")},
		}},
		{Element: "PlainCard", Files: []string{"a"}},
	}}
}

func TestDiagnostic_OneLinePerFailure(t *testing.T) {
	r := report.New(language.English)
	line := r.Diagnostic(sampleSummary().Results[1])
	if strings.Contains(line, "\n") {
		t.Fatalf("diagnostic must be one line: %q", line)
	}
	if !strings.HasPrefix(line, "failed  BrokenLabel: ") {
		t.Fatalf("unexpected diagnostic: %q", line)
	}
	if strings.Contains(line, "element BrokenLabel") {
		t.Fatalf("element name repeated: %q", line)
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := report.New(language.Und).WriteSummary(&buf, sampleSummary()); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "ok      FooBar (4 files)" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "<") {
		t.Fatalf("diagnostic should not be HTML escaped: %q", lines[1])
	}
	if lines[3] != "Summary: 2 succeeded, 1 failed (3 total)" {
		t.Fatalf("unexpected summary line: %q", lines[3])
	}
	if lines[4] != "Failed: BrokenLabel" {
		t.Fatalf("unexpected failure line: %q", lines[4])
	}
}

func TestWriteSummary_NoFailures(t *testing.T) {
	var buf bytes.Buffer
	summary := orchestrator.Summary{Results: []orchestrator.Result{{Element: "FooBar"}}}
	if err := report.New(language.English).WriteSummary(&buf, summary); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	if strings.Contains(buf.String(), "Failed:") {
		t.Fatalf("no failure line expected:\n%s", buf.String())
	}
}

func TestWriteSummary_GroupsLargeCounts(t *testing.T) {
	results := make([]orchestrator.Result, 1200)
	for i := range results {
		results[i] = orchestrator.Result{Element: "E"}
	}
	var buf bytes.Buffer
	if err := report.New(language.English).WriteSummary(&buf, orchestrator.Summary{Results: results}); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	if !strings.Contains(buf.String(), "1,200 succeeded") {
		t.Fatalf("expected grouped count, got tail:\n%s", buf.String()[buf.Len()-80:])
	}
}

func TestWriteList(t *testing.T) {
	m := manifest.NewManifest("1.0.0", []string{"MyButton", "Ghost"}, []manifest.Element{{
		Name:    "MyButton",
		TagName: "my-button",
		Attributes: []manifest.Attribute{
			{Name: "disabled", TypeText: "boolean"},
			{Name: "label", TypeText: "string"},
			{Name: "onClick", TypeText: "() => void"},
		},
	}})

	var buf bytes.Buffer
	if err := report.New(language.English).WriteList(&buf, m); err != nil {
		t.Fatalf("write list: %v", err)
	}
	want := "MyButton\t<my-button>\t1 text, 1 boolean, 1 function\nGhost\t-\tundeclared\n"
	if buf.String() != want {
		t.Fatalf("list mismatch:\n got %q\nwant %q", buf.String(), want)
	}
}
