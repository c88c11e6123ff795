package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Name() != "creditroll" {
			t.Errorf("expected name 'creditroll', got %q", cmd.Name())
		}
	})

	t.Run("has descriptions and version", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
	})

	t.Run("has generation flags", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			name      string
			shorthand string
			defValue  string
		}{
			{"config", "c", ""},
			{"env-file", "", ".env"},
			{"concurrency", "n", "1"},
			{"timeout", "t", "0s"},
			{"proxy", "", ""},
			{"repo-dir", "", "."},
			{"locale", "", ""},
		}
		for _, tc := range testCases {
			flag := cmd.Flags().Lookup(tc.name)
			if flag == nil {
				t.Errorf("expected %s flag", tc.name)
				continue
			}
			if flag.Shorthand != tc.shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", tc.name, tc.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tc.defValue {
				t.Errorf("%s: expected default %q, got %q", tc.name, tc.defValue, flag.DefValue)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		found := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			found[sub.Name()] = true
		}
		for _, name := range []string{"init", "version"} {
			if !found[name] {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestRootCmdArgs tests positional argument validation.
func TestRootCmdArgs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{}},
		{"one argument", []string{"CONTRIBUTORS.md"}},
		{"three arguments", []string{"a.md", "b.json", "c.json"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cmd := NewRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "accepts 2 arg(s)") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
