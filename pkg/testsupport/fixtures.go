package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	pkgmanifest "github.com/goliatone/go-aemgen/pkg/manifest"
)

// LoadDocument reads a fixture and builds a manifest.Document using a file
// source. Testing helpers fail the test on error to keep callers concise.
func LoadDocument(t *testing.T, path string) pkgmanifest.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgmanifest.Document, error) {
	if path == "" {
		return pkgmanifest.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmanifest.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgmanifest.NewDocument(pkgmanifest.SourceFromFile(path), data)
	if err != nil {
		return pkgmanifest.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadFile returns the content of path on filesystem, failing the test
// when it cannot be read.
func MustReadFile(t *testing.T, filesystem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(filesystem, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists on filesystem.
func Exists(t *testing.T, filesystem afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(filesystem, path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return ok
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
