package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Reader resolves a source identifier into its raw text. The builder does
// not care whether the source is a file or an in-memory buffer.
type Reader interface {
	Read(id string) ([]byte, error)
	Name() string
}

// FileReader reads sources from the local filesystem.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() *FileReader { return &FileReader{} }

func (r *FileReader) Name() string { return "file" }

func (r *FileReader) Read(id string) ([]byte, error) {
	data, err := os.ReadFile(id)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", id, err)
	}
	return data, nil
}

// MemoryReader serves fixed content keyed by identifier, for development
// and testing.
type MemoryReader struct {
	Sources map[string]string
}

func (r *MemoryReader) Name() string { return "memory" }

func (r *MemoryReader) Read(id string) ([]byte, error) {
	content, ok := r.Sources[id]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", id)
	}
	return []byte(content), nil
}

// Discover expands a glob pattern into a sorted list of source identifiers.
func Discover(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
