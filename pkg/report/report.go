// Package report renders per-element diagnostics and the batch summary.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goliatone/go-aemgen/pkg/attribute"
	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/orchestrator"
)

const summaryTemplate = `{% for line in diagnostics %}{{ line|safe }}
{% endfor %}Summary: {{ succeeded }} succeeded, {{ failed }} failed ({{ total }} total)
{% if failures %}Failed: {{ failures|join:", "|safe }}
{% endif %}`

const listTemplate = `{% for el in elements %}{{ el.name|safe }}	{{ el.tag|safe }}	{{ el.attributes|safe }}
{% endfor %}`

var (
	compileOnce sync.Once
	compiled    map[string]*pongo2.Template
	compileErr  error
)

func templates() (map[string]*pongo2.Template, error) {
	compileOnce.Do(func() {
		out := make(map[string]*pongo2.Template, 2)
		for name, src := range map[string]string{"summary": summaryTemplate, "list": listTemplate} {
			tpl, err := pongo2.FromString(src)
			if err != nil {
				compileErr = fmt.Errorf("report: compile %s template: %w", name, err)
				return
			}
			out[name] = tpl
		}
		compiled = out
	})
	return compiled, compileErr
}

// Reporter formats results for a terminal.
type Reporter struct {
	printer *message.Printer
}

// New returns a Reporter formatting counts for tag. An undefined tag falls
// back to English.
func New(tag language.Tag) *Reporter {
	if tag == language.Und {
		tag = language.English
	}
	return &Reporter{printer: message.NewPrinter(tag)}
}

// Diagnostic renders one result as a single line.
func (r *Reporter) Diagnostic(result orchestrator.Result) string {
	if result.OK() {
		return r.printer.Sprintf("ok      %s (%d files)", result.Element, len(result.Files))
	}
	cause := result.Err
	var elErr *orchestrator.ElementError
	if errors.As(cause, &elErr) && elErr.Err != nil {
		cause = elErr.Err
	}
	return fmt.Sprintf("failed  %s: %s", result.Element, oneLine(cause.Error()))
}

// WriteSummary writes one diagnostic per element followed by the succeeded
// and failed counts.
func (r *Reporter) WriteSummary(w io.Writer, summary orchestrator.Summary) error {
	tpls, err := templates()
	if err != nil {
		return err
	}

	diagnostics := make([]string, 0, summary.Total())
	for _, result := range summary.Results {
		diagnostics = append(diagnostics, r.Diagnostic(result))
	}
	var failures []string
	for _, result := range summary.Failures() {
		failures = append(failures, result.Element)
	}

	return tpls["summary"].ExecuteWriter(pongo2.Context{
		"diagnostics": diagnostics,
		"succeeded":   r.printer.Sprintf("%d", summary.Succeeded()),
		"failed":      r.printer.Sprintf("%d", len(failures)),
		"total":       r.printer.Sprintf("%d", summary.Total()),
		"failures":    failures,
	}, w)
}

// WriteList writes one line per discovered element: its name, tag, and the
// number of attributes by kind. Undeclared elements are marked as such.
func (r *Reporter) WriteList(w io.Writer, m manifest.Manifest) error {
	tpls, err := templates()
	if err != nil {
		return err
	}

	elements := make([]map[string]string, 0, len(m.Names))
	for _, name := range m.Names {
		row := map[string]string{"name": name, "tag": "-", "attributes": "undeclared"}
		if el, ok := m.Element(name); ok {
			if el.TagName != "" {
				row["tag"] = "<" + el.TagName + ">"
			}
			row["attributes"] = r.attributeSummary(attribute.ClassifyAll(el.Attributes))
		}
		elements = append(elements, row)
	}
	return tpls["list"].ExecuteWriter(pongo2.Context{"elements": elements}, w)
}

func (r *Reporter) attributeSummary(attrs []attribute.Classified) string {
	if len(attrs) == 0 {
		return "no attributes"
	}
	counts := make(map[attribute.Kind]int)
	for _, attr := range attrs {
		counts[attr.Kind]++
	}
	parts := make([]string, 0, len(counts))
	for _, kind := range []attribute.Kind{attribute.Text, attribute.Boolean, attribute.Numeric, attribute.List, attribute.Function} {
		if n := counts[kind]; n > 0 {
			parts = append(parts, r.printer.Sprintf("%d %s", n, kind))
		}
	}
	return strings.Join(parts, ", ")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
