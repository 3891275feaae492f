package aemgen

import (
	"io/fs"

	"github.com/goliatone/go-aemgen/pkg/template"
)

// EmbeddedTemplates exposes the bundled component templates so callers can
// copy them into an override directory without importing pkg/template.
func EmbeddedTemplates() fs.FS {
	return template.EmbeddedFS()
}
