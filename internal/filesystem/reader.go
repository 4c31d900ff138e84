package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Reader loads the full content of a file
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// FSReader reads files from an afero filesystem
type FSReader struct {
	fs afero.Fs
}

// NewFSReader creates a reader backed by the given filesystem
func NewFSReader(fs afero.Fs) *FSReader {
	return &FSReader{fs: fs}
}

// NewOSReader creates a reader backed by the host filesystem
func NewOSReader() *FSReader {
	return NewFSReader(afero.NewOsFs())
}

// ReadFile reads the whole file in one call
func (r *FSReader) ReadFile(path string) ([]byte, error) {
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}

// FileName returns the last element of path
func FileName(path string) string {
	return filepath.Base(path)
}

// GetExtension returns the file extension without dot.
// Names ending in a dot have no extension.
func GetExtension(path string) string {
	ext := filepath.Ext(path)
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
