// Package output writes generated artifacts to a filesystem. The afero-backed
// Writer serves both the real disk and in-memory filesystems used in tests.
package output

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// FileWriter is the write collaborator used by the orchestrator.
type FileWriter interface {
	EnsureDir(path string) error
	Write(path, content string) error
}

// IOError reports a failed directory or file write.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("output: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Writer implements FileWriter on top of an afero filesystem.
type Writer struct {
	fs afero.Fs
}

// Ensure the implementation satisfies the interface.
var _ FileWriter = (*Writer)(nil)

// NewWriter wraps filesystem. A nil filesystem selects the OS filesystem.
func NewWriter(filesystem afero.Fs) *Writer {
	if filesystem == nil {
		filesystem = afero.NewOsFs()
	}
	return &Writer{fs: filesystem}
}

// EnsureDir creates path and any missing parents.
func (w *Writer) EnsureDir(path string) error {
	if err := w.fs.MkdirAll(path, dirPerm); err != nil {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// Write replaces the file at path with content.
func (w *Writer) Write(path, content string) error {
	if err := afero.WriteFile(w.fs, path, []byte(content), filePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
