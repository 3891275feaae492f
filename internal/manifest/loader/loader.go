package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	pkgmanifest "github.com/goliatone/go-aemgen/pkg/manifest"
)

// Loader implements pkgmanifest.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level aemgen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgmanifest.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgmanifest.LoaderOptions) pkgmanifest.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the manifest identified by src. Unreadable sources are reported
// as pkgmanifest.ErrManifestNotFound; empty payloads as ErrManifestMalformed.
func (l *Loader) Load(ctx context.Context, src pkgmanifest.Source) (pkgmanifest.Document, error) {
	if src == nil {
		return pkgmanifest.Document{}, errors.New("manifest loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgmanifest.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgmanifest.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		return pkgmanifest.Document{}, fmt.Errorf("manifest loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return pkgmanifest.Document{}, ctxErr
		}
		return pkgmanifest.Document{}, fmt.Errorf("%w: %s: %w", pkgmanifest.ErrManifestNotFound, src.Location(), err)
	}
	if len(data) == 0 {
		return pkgmanifest.Document{}, fmt.Errorf("%w: %s is empty", pkgmanifest.ErrManifestMalformed, src.Location())
	}

	return pkgmanifest.NewDocument(src, data)
}
