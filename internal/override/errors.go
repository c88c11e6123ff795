package override

import (
	"fmt"
	"strings"
)

// ValidationError is returned when an override file does not match the schema.
type ValidationError struct {
	// Path is the override file.
	Path string

	// Errors lists every schema violation.
	Errors []FieldError
}

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// Error implements error.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "override file %s is invalid:", e.Path)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError is returned when the embedded schema cannot be compiled.
type SchemaLoadError struct {
	Cause error
}

// Error implements error.
func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("load override schema: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}
