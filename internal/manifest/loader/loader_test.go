package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgmanifest "github.com/goliatone/go-aemgen/pkg/manifest"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom-elements.json")
	if err := os.WriteFile(path, []byte(`{"modules":[]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := New(pkgmanifest.NewLoaderOptions()).Load(context.Background(), pkgmanifest.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"modules":[]}` {
		t.Fatalf("unexpected payload: %s", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("location mismatch: %s", doc.Location())
	}
}

func TestLoad_FileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	_, err := New(pkgmanifest.NewLoaderOptions()).Load(context.Background(), pkgmanifest.SourceFromFile(missing))
	if !errors.Is(err, pkgmanifest.ErrManifestNotFound) {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected underlying not-exist cause, got %v", err)
	}
}

func TestLoad_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"fixtures/manifest.json": {Data: []byte(`{"modules":[]}`)},
		"fixtures/empty.json":    {Data: nil},
	}
	l := New(pkgmanifest.NewLoaderOptions(pkgmanifest.WithFileSystem(fsys)))

	if _, err := l.Load(context.Background(), pkgmanifest.SourceFromFS("fixtures/manifest.json")); err != nil {
		t.Fatalf("load fs: %v", err)
	}

	_, err := l.Load(context.Background(), pkgmanifest.SourceFromFS("fixtures/empty.json"))
	if !errors.Is(err, pkgmanifest.ErrManifestMalformed) {
		t.Fatalf("expected ErrManifestMalformed for empty payload, got %v", err)
	}
}

func TestLoad_FSNotConfigured(t *testing.T) {
	_, err := New(pkgmanifest.NewLoaderOptions()).Load(context.Background(), pkgmanifest.SourceFromFS("manifest.json"))
	if !errors.Is(err, pkgmanifest.ErrManifestNotFound) {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(pkgmanifest.NewLoaderOptions()).Load(ctx, pkgmanifest.SourceFromFile("manifest.json"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
