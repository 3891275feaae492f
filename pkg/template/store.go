package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/spf13/afero"
)

// Template keys, relative to the template root.
const (
	KeyRootDescriptor     = ".content.xml"
	KeyVersionedContainer = "component/.content.xml"
	KeyVersionPointer     = "component/v1/.content.xml"
	KeyContentDescriptor  = "component/v1/component/.content.xml"
	KeyMarkup             = "component/v1/component/component.html"
	KeyDialogDescriptor   = "component/v1/component/_cq_dialog/.content.xml"
)

// ErrTemplateMissing is returned when a required template is absent.
var ErrTemplateMissing = errors.New("template: missing")

// Store reads template text by key.
type Store interface {
	Read(key string) (string, error)
}

//go:embed all:templates
var embeddedTemplates embed.FS

// EmbeddedFS returns the bundled default templates.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// FSStore reads templates from an fs.FS.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore wraps fsys. A nil fsys selects the embedded defaults.
func NewFSStore(fsys fs.FS) *FSStore {
	if fsys == nil {
		fsys = EmbeddedFS()
	}
	return &FSStore{fsys: fsys}
}

// NewDirStore reads templates from dir on the supplied afero filesystem.
func NewDirStore(filesystem afero.Fs, dir string) *FSStore {
	return &FSStore{fsys: afero.NewIOFS(afero.NewBasePathFs(filesystem, dir))}
}

// Read returns the template stored under key.
func (s *FSStore) Read(key string) (string, error) {
	if s == nil || s.fsys == nil {
		return "", errors.New("template: store is nil")
	}
	name := path.Clean(key)
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("template: invalid key %q", key)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateMissing, key)
		}
		return "", fmt.Errorf("template: read %s: %w", key, err)
	}
	return string(data), nil
}

// CachedStore memoises successful reads from another Store. Loaded templates
// are never mutated, so every caller shares the same text.
type CachedStore struct {
	next Store

	mu    sync.RWMutex
	cache map[string]string
}

// NewCachedStore wraps next.
func NewCachedStore(next Store) *CachedStore {
	return &CachedStore{next: next, cache: make(map[string]string)}
}

// Read returns the cached template or loads it from the wrapped store.
func (s *CachedStore) Read(key string) (string, error) {
	s.mu.RLock()
	tpl, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	tpl, err := s.next.Read(key)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.cache[key] = tpl
	s.mu.Unlock()
	return tpl, nil
}
