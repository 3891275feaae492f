package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	pkgmanifest "github.com/goliatone/go-aemgen/pkg/manifest"
)

const (
	exportKindElement = "custom-element-definition"
	moduleKindJS      = "javascript-module"
)

// Parser implements pkgmanifest.Parser for custom-elements manifests written
// as JSON or YAML.
type Parser struct {
	options     pkgmanifest.ParserOptions
	constraints *semver.Constraints
	constErr    error
}

// Ensure the implementation satisfies the public interface.
var _ pkgmanifest.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgmanifest.ParserOptions) pkgmanifest.Parser {
	p := &Parser{options: options}
	if strings.TrimSpace(options.SchemaVersions) != "" {
		p.constraints, p.constErr = semver.NewConstraint(options.SchemaVersions)
	}
	return p
}

type manifestFile struct {
	SchemaVersion string       `json:"schemaVersion"`
	Modules       []moduleFile `json:"modules"`
}

type moduleFile struct {
	Kind         string            `json:"kind"`
	Path         string            `json:"path"`
	Exports      []exportFile      `json:"exports"`
	Declarations []declarationFile `json:"declarations"`
}

type exportFile struct {
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Declaration *referenceFile `json:"declaration"`
}

type referenceFile struct {
	Name   string `json:"name"`
	Module string `json:"module"`
}

type declarationFile struct {
	Kind       string            `json:"kind"`
	Name       string            `json:"name"`
	TagName    string            `json:"tagName"`
	Attributes []attributeFile   `json:"attributes"`
	Slots      []json.RawMessage `json:"slots"`
}

type attributeFile struct {
	Name        string          `json:"name"`
	Type        *typeFile       `json:"type"`
	Default     json.RawMessage `json:"default"`
	Description string          `json:"description"`
}

type typeFile struct {
	Text string `json:"text"`
}

// Parse decodes the document, checks its shape, and extracts the custom
// elements it declares.
func (p *Parser) Parse(ctx context.Context, doc pkgmanifest.Document) (pkgmanifest.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return pkgmanifest.Manifest{}, err
	}
	if p.constErr != nil {
		return pkgmanifest.Manifest{}, fmt.Errorf("manifest parser: schema version constraint: %w", p.constErr)
	}

	raw := doc.Raw()
	if len(bytes.TrimSpace(raw)) == 0 {
		return pkgmanifest.Manifest{}, malformed(doc, errors.New("document payload is empty"))
	}

	jsonData, err := toJSON(raw)
	if err != nil {
		return pkgmanifest.Manifest{}, malformed(doc, err)
	}

	if p.options.ValidateShape {
		if err := validateShape(jsonData); err != nil {
			return pkgmanifest.Manifest{}, malformed(doc, err)
		}
	}

	var file manifestFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return pkgmanifest.Manifest{}, malformed(doc, err)
	}
	if file.Modules == nil {
		return pkgmanifest.Manifest{}, malformed(doc, errors.New("missing modules list"))
	}

	names := elementNames(file.Modules)
	elements := declarations(file.Modules)

	m := pkgmanifest.NewManifest(file.SchemaVersion, names, elements)
	m.Warnings = p.checkSchemaVersion(file.SchemaVersion)
	return m, nil
}

func (p *Parser) checkSchemaVersion(raw string) []string {
	version := strings.TrimSpace(raw)
	if version == "" || p.constraints == nil {
		return nil
	}
	parsed, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return []string{fmt.Sprintf("schemaVersion %q is not a semantic version", version)}
	}
	if !p.constraints.Check(parsed) {
		return []string{fmt.Sprintf("schemaVersion %s is outside the supported range %s", parsed, p.options.SchemaVersions)}
	}
	return nil
}

func malformed(doc pkgmanifest.Document, err error) error {
	return fmt.Errorf("%w: %s: %w", pkgmanifest.ErrManifestMalformed, doc.Location(), err)
}

// toJSON returns the payload as JSON, converting YAML input when the payload
// is not valid JSON.
func toJSON(raw []byte) ([]byte, error) {
	if json.Valid(raw) {
		return raw, nil
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, errors.New("invalid JSON or YAML")
	}
	if _, ok := generic.(map[string]any); !ok {
		return nil, errors.New("document root must be an object")
	}
	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return out, nil
}

func elementNames(modules []moduleFile) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, mod := range modules {
		for _, exp := range mod.Exports {
			if exp.Kind != exportKindElement || exp.Declaration == nil || exp.Declaration.Name == "" {
				continue
			}
			if _, ok := seen[exp.Declaration.Name]; ok {
				continue
			}
			seen[exp.Declaration.Name] = struct{}{}
			names = append(names, exp.Declaration.Name)
		}
	}
	return names
}

func declarations(modules []moduleFile) []pkgmanifest.Element {
	var out []pkgmanifest.Element
	for _, mod := range modules {
		if mod.Kind != moduleKindJS {
			continue
		}
		for _, decl := range mod.Declarations {
			if decl.Name == "" {
				continue
			}
			out = append(out, toElement(decl))
		}
	}
	return out
}

func toElement(decl declarationFile) pkgmanifest.Element {
	el := pkgmanifest.Element{
		Name:     decl.Name,
		TagName:  decl.TagName,
		HasSlots: len(decl.Slots) > 0,
	}
	if len(decl.Attributes) > 0 {
		el.Attributes = make([]pkgmanifest.Attribute, 0, len(decl.Attributes))
	}
	for _, attr := range decl.Attributes {
		out := pkgmanifest.Attribute{
			Name:        attr.Name,
			Description: attr.Description,
		}
		if attr.Type != nil {
			out.TypeText = attr.Type.Text
		}
		out.Default, out.HasDefault = defaultValue(attr.Default)
		el.Attributes = append(el.Attributes, out)
	}
	return el
}

// defaultValue normalises a declared default. Manifests record defaults as
// source literals, so one pair of matching surrounding quotes is dropped.
func defaultValue(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	value := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		value = s
	}
	return unquoteLiteral(value), true
}

func unquoteLiteral(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '\'' || first == '"' || first == '`') {
		return value[1 : len(value)-1]
	}
	return value
}
