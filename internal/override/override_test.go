package override

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/creditroll/internal/model"
)

// writeFile writes content to a temporary override file.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patch.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad tests loading override files from disk.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `{"Carol":"https://carol.example","Dave":"https://dave.example"}`)
		got, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.Roster{
			"Carol": "https://carol.example",
			"Dave":  "https://dave.example",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("roster mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()

		got, err := Load(writeFile(t, "{}\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty roster, got %v", got)
		}
	})

	t.Run("empty URL is accepted", func(t *testing.T) {
		t.Parallel()

		got, err := Load(writeFile(t, `{"Erin":""}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url, ok := got["Erin"]; !ok || url != "" {
			t.Errorf("expected Erin with empty URL, got %v", got)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "typo-patreon.json")
		got, err := Load(path)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected fs.ErrNotExist, got %v", err)
		}
		if got != nil {
			t.Errorf("expected no roster, got %v", got)
		}
		if !strings.Contains(err.Error(), "typo-patreon.json") {
			t.Errorf("expected path in error, got %q", err.Error())
		}
	})

	t.Run("loaded file is logged at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		if _, err := NewLoader(WithLogger(logger)).Load(writeFile(t, `{"Carol":"https://carol.example"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "override file loaded") || !strings.Contains(buf.String(), "entries=1") {
			t.Errorf("expected debug log, got %q", buf.String())
		}
	})

	t.Run("invalid JSON is a decode error", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, `{"Carol":`))
		if err == nil {
			t.Fatal("expected error")
		}
		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("expected *json.SyntaxError, got %T: %v", err, err)
		}
	})

	t.Run("non-string value is a validation error", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `{"Carol":{"url":"https://carol.example"}}`)
		_, err := Load(path)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.Path != path {
			t.Errorf("expected path %q, got %q", path, verr.Path)
		}
		if len(verr.Errors) == 0 {
			t.Fatal("expected field errors")
		}
		if verr.Errors[0].Field != "Carol" {
			t.Errorf("expected field Carol, got %q", verr.Errors[0].Field)
		}
	})

	t.Run("array root is a validation error", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, `["Carol"]`))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.Errors[0].Field != "(root)" {
			t.Errorf("expected root field, got %q", verr.Errors[0].Field)
		}
	})

	t.Run("empty name is accepted", func(t *testing.T) {
		t.Parallel()

		got, err := Load(writeFile(t, `{"":"https://nobody.example"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[""] != "https://nobody.example" {
			t.Errorf("expected empty-name entry, got %v", got)
		}
	})
}

// TestOverridePrecedence tests that an override replaces a discovered entry
// and adds new ones.
func TestOverridePrecedence(t *testing.T) {
	t.Parallel()

	discovered := model.Roster{"Carol": "https://github.com/owner/project/graphs/contributors"}
	overrides, err := Parse([]byte(`{"Carol":"https://carol.example","Dave":"https://dave.example"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := discovered.Merge(overrides)
	want := model.Roster{
		"Carol": "https://carol.example",
		"Dave":  "https://dave.example",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged roster mismatch (-want +got):\n%s", diff)
	}
}

// TestValidationErrorMessage tests the error text.
func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ValidationError{
		Path: "tools/patch.json",
		Errors: []FieldError{
			{Field: "Carol", Message: "Invalid type. Expected: string, given: object"},
		},
	}

	want := "override file tools/patch.json is invalid:\n  1. Carol: Invalid type. Expected: string, given: object"
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestSchema tests that the embedded schema is valid JSON and is copied.
func TestSchema(t *testing.T) {
	t.Parallel()

	s := Schema()
	if !json.Valid(s) {
		t.Fatal("embedded schema is not valid JSON")
	}
	s[0] = 'x'
	if Schema()[0] == 'x' {
		t.Error("expected Schema to return a copy")
	}
}
