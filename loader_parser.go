package aemgen

import (
	internalLoader "github.com/goliatone/go-aemgen/internal/manifest/loader"
	internalParser "github.com/goliatone/go-aemgen/internal/manifest/parser"
	pkgmanifest "github.com/goliatone/go-aemgen/pkg/manifest"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgmanifest.LoaderOption) pkgmanifest.Loader {
	cfg := pkgmanifest.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgmanifest.ParserOption) pkgmanifest.Parser {
	cfg := pkgmanifest.NewParserOptions(options...)
	return internalParser.New(cfg)
}
