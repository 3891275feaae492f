package orchestrator

import (
	"path/filepath"

	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/template"
)

// Batch is the read-only context shared by every element of one run: the
// parsed manifest, the request, and the versioning templates loaded once.
type Batch struct {
	Manifest manifest.Manifest
	Request  Request

	versionContainer string
	versionPointer   string
	versionErr       error
}

func (o *Orchestrator) newBatch(m manifest.Manifest, req Request) *Batch {
	b := &Batch{Manifest: m, Request: req}
	if req.Versioned {
		b.versionContainer, b.versionErr = o.store.Read(template.KeyVersionedContainer)
		if b.versionErr == nil {
			b.versionPointer, b.versionErr = o.store.Read(template.KeyVersionPointer)
		}
	}
	return b
}

// Elements returns the element names the request selects, in manifest order
// for "All".
func (b *Batch) Elements() []string {
	selection := b.Request.Selection
	if selection == "" || manifest.IsAll(selection) {
		return append([]string(nil), b.Manifest.Names...)
	}
	return []string{selection}
}

// RootDir returns the root directory for element. A namespace places it in
// the content-repository layout, otherwise directly under the output dir.
func RootDir(outputDir, namespace, element string) string {
	if namespace != "" {
		return filepath.Join(outputDir, "jcr_root", "apps", namespace, "components", "content", element)
	}
	return filepath.Join(outputDir, element)
}
