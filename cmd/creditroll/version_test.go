package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestReadBuildInfo tests that every field has a value.
func TestReadBuildInfo(t *testing.T) {
	t.Parallel()

	info := readBuildInfo()
	if info.Version == "" {
		t.Error("expected non-empty version")
	}
	if info.Commit == "" {
		t.Error("expected non-empty commit")
	}
	if info.Date == "" {
		t.Error("expected non-empty date")
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("unexpected Go version %q", info.GoVersion)
	}
}

// TestShortRevision tests commit hash abbreviation.
func TestShortRevision(t *testing.T) {
	t.Parallel()

	if got := shortRevision("0123456789abcdef"); got != "0123456" {
		t.Errorf("expected '0123456', got %q", got)
	}
	if got := shortRevision("abc"); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}

// TestNewVersionCmd tests the version command.
func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("command has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd := NewVersionCmd(); cmd.Use != "version" {
			t.Errorf("expected Use to be 'version', got %q", cmd.Use)
		}
	})

	t.Run("command outputs version info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"creditroll version", "commit:", "built:", "go:"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}
	})

	t.Run("short flag prints only the version", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--short"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.TrimSpace(buf.String()); got != readBuildInfo().Version {
			t.Errorf("expected %q, got %q", readBuildInfo().Version, got)
		}
	})
}
