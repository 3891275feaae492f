// Package aemgen scaffolds AEM components from a custom-elements manifest.
// The root package re-exports the common entry points; the pipeline itself
// lives in pkg/orchestrator.
package aemgen

import (
	"context"

	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/orchestrator"
)

// Request aliases orchestrator.Request for callers that only import the root
// package.
type Request = orchestrator.Request

// Summary aliases orchestrator.Summary.
type Summary = orchestrator.Summary

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the manifest at path and scaffolds every element it defines
// into outputDir, unversioned and without a namespace.
func Generate(ctx context.Context, path, outputDir, group string, options ...orchestrator.Option) (Summary, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:    manifest.SourceFromFile(path),
		Selection: manifest.SelectAll,
		Group:     group,
		OutputDir: outputDir,
	})
}

// GenerateFromManifest scaffolds using a pre-parsed manifest, bypassing the
// loader stage.
func GenerateFromManifest(ctx context.Context, m manifest.Manifest, req Request, options ...orchestrator.Option) (Summary, error) {
	gen := orchestrator.New(options...)
	req.Manifest = &m
	return gen.Generate(ctx, req)
}
