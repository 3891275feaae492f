package manifest

import "errors"

var (
	// ErrManifestNotFound is returned when the manifest path cannot be read.
	ErrManifestNotFound = errors.New("manifest: not found")
	// ErrManifestMalformed is returned when the payload cannot be decoded or
	// lacks the module/export/declaration shape.
	ErrManifestMalformed = errors.New("manifest: malformed")
)
