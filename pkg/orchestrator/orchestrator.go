package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-aemgen/internal/manifest/loader"
	internalParser "github.com/goliatone/go-aemgen/internal/manifest/parser"
	"github.com/goliatone/go-aemgen/pkg/artifact"
	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/output"
	"github.com/goliatone/go-aemgen/pkg/template"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom manifest loader.
func WithLoader(loader manifest.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom manifest parser.
func WithParser(parser manifest.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithTemplateStore replaces the embedded templates. The store is wrapped in
// a template.CachedStore so each template is read at most once per
// orchestrator.
func WithTemplateStore(store template.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithRegistry injects the artifact table.
func WithRegistry(registry *artifact.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithWriter injects the file writer.
func WithWriter(writer output.FileWriter) Option {
	return func(o *Orchestrator) {
		o.writer = writer
	}
}

// WithLogger injects a structured logger. Nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates manifest loading and per-element generation. It
// applies defaults (file loader, embedded templates, OS filesystem) while
// remaining open to dependency injection.
type Orchestrator struct {
	loader   manifest.Loader
	parser   manifest.Parser
	store    template.Store
	resolver *template.Resolver
	registry *artifact.Registry
	writer   output.FileWriter
	logger   *zap.Logger
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(manifest.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(manifest.NewParserOptions())
	}
	if o.store == nil {
		o.store = template.NewFSStore(nil)
	}
	if _, cached := o.store.(*template.CachedStore); !cached {
		o.store = template.NewCachedStore(o.store)
	}
	o.resolver = template.NewResolver(o.store)
	if o.registry == nil {
		o.registry = artifact.DefaultRegistry()
	}
	if o.writer == nil {
		o.writer = output.NewWriter(nil)
	}
}

// Request describes one batch run. It is the resolved form of the user's
// choices, gathered interactively or from flags and configuration.
type Request struct {
	// Source identifies the manifest. Optional when Manifest is supplied.
	Source manifest.Source

	// Manifest allows callers to bypass loading when they already parsed it.
	Manifest *manifest.Manifest

	// Selection is one element name or manifest.SelectAll. Empty selects all.
	Selection string

	// Group is the component group label written to content descriptors.
	Group string

	// Versioned nests artifacts under v1 with container and pointer
	// descriptors.
	Versioned bool

	// Namespace is the optional project namespace. Empty writes directly
	// under OutputDir.
	Namespace string

	// OutputDir is the base output directory.
	OutputDir string
}

// LoadManifest loads and parses the manifest behind src. Errors match
// manifest.ErrManifestNotFound or manifest.ErrManifestMalformed.
func (o *Orchestrator) LoadManifest(ctx context.Context, src manifest.Source) (manifest.Manifest, error) {
	if src == nil {
		return manifest.Manifest{}, errors.New("orchestrator: manifest source is required")
	}
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("orchestrator: load manifest: %w", err)
	}
	m, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("orchestrator: parse manifest: %w", err)
	}
	for _, warning := range m.Warnings {
		o.logger.Warn("manifest warning", zap.String("manifest", doc.Location()), zap.String("warning", warning))
	}
	return m, nil
}

// Generate runs a batch. The returned error is reserved for batch-fatal
// conditions (manifest errors, cancellation); per-element failures are
// reported in the Summary.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	m, err := o.resolveManifest(ctx, req)
	if err != nil {
		return Summary{}, err
	}

	batch := o.newBatch(m, req)
	names := batch.Elements()
	summary := Summary{Results: make([]Result, 0, len(names))}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Results = append(summary.Results, o.generateElement(batch, name))
	}
	return summary, nil
}

func (o *Orchestrator) resolveManifest(ctx context.Context, req Request) (manifest.Manifest, error) {
	if req.Manifest != nil {
		return *req.Manifest, nil
	}
	if req.Source == nil {
		return manifest.Manifest{}, errors.New("orchestrator: source or manifest is required")
	}
	return o.LoadManifest(ctx, req.Source)
}
