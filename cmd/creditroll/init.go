package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nao1215/creditroll/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/creditroll.yaml
var configTemplate embed.FS

// emptyOverride is the content of a freshly created override file.
const emptyOverride = "{}\n"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file and empty override files",
		Long: `Init creates a ` + config.DefaultConfigFile + ` configuration file in the current directory
and an empty override file for every group.

The generated configuration includes:
- The project name, locale and donation links
- The prose printed under each heading
- The override file of each group

Existing override files are never touched.

Examples:
  # Create .creditroll.yaml and tools/patch-*.json
  creditroll init

  # Create the configuration at a specific path
  creditroll init -o config/creditroll.yaml

  # Force overwrite an existing configuration file
  creditroll init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")
	cmd.Flags().Bool("no-overrides", false,
		"Do not create the override files")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	noOverrides, err := cmd.Flags().GetBool("no-overrides")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/creditroll.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	if err := writeNewFile(outputPath, content); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)

	if noOverrides {
		return nil
	}

	defaults := config.NewFile().Overrides
	for _, path := range []string{
		defaults.Contributors,
		defaults.Translators,
		defaults.GitHubSponsors,
		defaults.Patreon,
	} {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(out, "Keeping existing override file: %s\n", path)
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if err := writeNewFile(path, []byte(emptyOverride)); err != nil {
			return fmt.Errorf("failed to write override file: %w", err)
		}
		fmt.Fprintf(out, "Created override file: %s\n", path)
	}

	fmt.Fprintln(out, "\nAdd \"Name\": \"https://profile.url\" entries to an override file to")
	fmt.Fprintln(out, "credit someone the sources miss or to replace a discovered link.")

	return nil
}

// writeNewFile creates the parent directories of path and writes content.
func writeNewFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return os.WriteFile(path, content, 0o600)
}
