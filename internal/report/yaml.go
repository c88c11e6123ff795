package report

import (
	"bytes"
	"io"

	"github.com/nao1215/creditroll/internal/model"
	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the document as YAML with keys in display order.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the document in YAML format.
func (w *YAMLWriter) Write(doc *model.Document) (int, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
