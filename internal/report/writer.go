package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/creditroll/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write renders the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *model.Document) (int, error)
}

// Factory creates a Writer bound to an output destination.
type Factory func(output io.Writer) Writer

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Render renders doc with a writer from newWriter and returns the bytes.
func Render(newWriter Factory, doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := newWriter(&buf).Write(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile creates the parent directories of path and writes data to it.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // output directories are meant to be readable
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // generated documents are public
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// IsYAMLPath reports whether path selects the YAML structured format.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// StructuredFactory returns the structured writer for path: YAML for
// .yaml and .yml, JSON otherwise.
func StructuredFactory(path string) Factory {
	if IsYAMLPath(path) {
		return func(output io.Writer) Writer { return NewYAMLWriter(output) }
	}
	return func(output io.Writer) Writer { return NewJSONWriter(output) }
}
