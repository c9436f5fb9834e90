package source

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads the catalog from a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", s.path, err)
	}

	return data, nil
}

// Ref returns the file path.
func (s *FileSource) Ref() string { return s.path }

// Path returns the file path for watching.
func (s *FileSource) Path() string { return s.path }
