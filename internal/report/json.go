package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/creditroll/internal/model"
)

// DefaultJSONIndent is the indentation of the structured document.
const DefaultJSONIndent = "\t"

// JSONWriter outputs the document as JSON. Each group is an object whose
// keys appear in display order. HTML characters are not escaped, so names
// and URLs read the same as in the Markdown document.
type JSONWriter struct {
	baseWriter

	// indentString is the indentation string. Empty means compact output.
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent sets the indentation string.
func WithIndent(indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indentString = indent
	}
}

// WithCompact disables indentation.
func WithCompact() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indentString = ""
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indentString: DefaultJSONIndent,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in JSON format.
func (w *JSONWriter) Write(doc *model.Document) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indentString != "" {
		enc.SetIndent("", w.indentString)
	}

	if err := enc.Encode(doc); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
