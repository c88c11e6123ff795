package override

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/nao1215/creditroll/internal/model"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/override.schema.json
var schemaJSON []byte

// compiledSchema compiles the embedded schema on first use.
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Schema returns the JSON Schema that override files must satisfy.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// Loader reads override files.
type Loader struct {
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load reads the override file at path with the default logger.
func Load(path string) (model.Roster, error) {
	return NewLoader().Load(path)
}

// Load reads the override file at path.
//
// A missing file is an error matching fs.ErrNotExist; `creditroll init`
// creates empty override files. Invalid JSON is returned as a decode
// error, and JSON that is not a flat object of strings as a
// *ValidationError.
func (l *Loader) Load(path string) (model.Roster, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's configuration
	if err != nil {
		return nil, fmt.Errorf("read override file: %w", err)
	}

	roster, err := Parse(data)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
			return nil, verr
		}
		return nil, fmt.Errorf("override file %s: %w", path, err)
	}

	l.logger.Debug("override file loaded", "path", path, "entries", len(roster))
	return roster, nil
}

// Parse validates and decodes an override document.
func Parse(data []byte) (model.Roster, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	roster := model.NewRoster()
	for name, url := range entries {
		roster.Set(name, url)
	}
	return roster, nil
}

// Validate checks a decoded JSON document against the override schema.
func Validate(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return &SchemaLoadError{Cause: err}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &SchemaLoadError{Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return verr
}
