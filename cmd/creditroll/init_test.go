package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nao1215/creditroll/internal/config"
	"github.com/nao1215/creditroll/internal/override"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultConfigFile {
			t.Errorf("expected default %q, got %q", config.DefaultConfigFile, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// runInit executes init in a fresh working directory and returns it.
func runInit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	var out bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return dir, out.String(), err
}

// TestRunInitCmd tests the init command execution. The tests change the
// working directory, so they do not run in parallel.
func TestRunInitCmd(t *testing.T) {
	t.Run("creates config and override files", func(t *testing.T) {
		dir, out, err := runInit(t)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, config.DefaultConfigFile)); err != nil {
			t.Errorf("expected config file: %v", err)
		}
		for _, path := range []string{
			config.DefaultContributorOverrides,
			config.DefaultTranslatorOverrides,
			config.DefaultGitHubSponsorOverrides,
			config.DefaultPatreonSponsorOverrides,
		} {
			roster, err := override.Load(filepath.Join(dir, path))
			if err != nil {
				t.Errorf("override %s: %v", path, err)
				continue
			}
			if len(roster) != 0 {
				t.Errorf("expected empty override %s", path)
			}
		}
		if !strings.Contains(out, "Created configuration file") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("keeps existing override files", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		existing := filepath.Join(dir, config.DefaultPatreonSponsorOverrides)
		if err := os.MkdirAll(filepath.Dir(existing), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(existing, []byte(`{"Ivan":"https://ivan.example"}`), 0o600); err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		cmd := NewInitCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		roster, err := override.Load(existing)
		if err != nil {
			t.Fatal(err)
		}
		if roster["Ivan"] != "https://ivan.example" {
			t.Error("expected existing override file to be kept")
		}
		if !strings.Contains(out.String(), "Keeping existing override file") {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("no-overrides skips override files", func(t *testing.T) {
		dir, _, err := runInit(t, "--no-overrides")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "tools")); !os.IsNotExist(err) {
			t.Error("expected no tools directory")
		}
	})

	t.Run("fails if file exists without force", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile(config.DefaultConfigFile, []byte("existing"), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected 'already exists' error, got %v", err)
		}
	})

	t.Run("overwrites file with force flag", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		if err := os.WriteFile(config.DefaultConfigFile, []byte("existing"), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-f", "--no-overrides"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(config.DefaultConfigFile)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})

	t.Run("creates parent directories with owner-only permissions", func(t *testing.T) {
		dir, _, err := runInit(t, "-o", filepath.Join("config", "nested", "creditroll.yaml"), "--no-overrides")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(filepath.Join(dir, "config", "nested", "creditroll.yaml"))
		if err != nil {
			t.Fatalf("expected config file in nested directory: %v", err)
		}
		if runtime.GOOS != "windows" && info.Mode().Perm() != 0o600 {
			t.Errorf("expected permissions 0600, got %o", info.Mode().Perm())
		}
	})
}

// TestConfigTemplate tests that the embedded template loads as a configuration file.
func TestConfigTemplate(t *testing.T) {
	t.Parallel()

	content, err := configTemplate.ReadFile("templates/creditroll.yaml")
	if err != nil {
		t.Fatalf("failed to read template: %v", err)
	}

	path := filepath.Join(t.TempDir(), "creditroll.yaml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := config.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if f.Locale != "und" {
		t.Errorf("expected locale 'und', got %q", f.Locale)
	}
	if f.Overrides.Patreon != config.DefaultPatreonSponsorOverrides {
		t.Errorf("unexpected patreon override %q", f.Overrides.Patreon)
	}
}
