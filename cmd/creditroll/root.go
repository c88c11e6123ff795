package main

import (
	"fmt"
	"os"

	"github.com/nao1215/creditroll/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for creditroll.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creditroll <markdown-out> <structured-out>",
		Short: "Generate a credits page from git, Crowdin and GitHub Sponsors",
		Long: `creditroll collects everyone who helped a project and writes two documents:
a Markdown credits page and a structured document (JSON, or YAML when the
path ends in .yaml or .yml).

People are gathered from:
- git shortlog of the repository (contributors)
- the Crowdin project members (translators, blocked members excluded)
- the GitHub Sponsors of the token owner
- hand-curated override files, one per group (Patreon patrons come only from here)

Credentials are read from the environment, after loading an optional .env file:
  GITHUB_REPOSITORY, CROWDIN_PROJECTID, CROWDIN_TOKEN, GITHUB_TOKEN

Examples:
  # Write both documents
  creditroll CONTRIBUTORS.md contributors.json

  # YAML instead of JSON, names ordered for German
  creditroll --locale de docs/CREDITS.md docs/credits.yaml

  # Query the APIs concurrently with a 30 second request timeout
  creditroll -n 4 -t 30s CONTRIBUTORS.md contributors.json`,
		Args:          cobra.ExactArgs(2),
		RunE:          runGenerateCmd,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: "+config.DefaultConfigFile+" in current directory, then the XDG config directory)")
	cmd.Flags().String("env-file", ".env",
		"Environment file loaded before reading credentials (skipped if missing)")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of sources queried at once")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each API request (0 waits forever)")
	cmd.Flags().String("proxy", "",
		"Route API requests through a proxy (socks5://, socks5h://, http:// or https://)")
	cmd.Flags().String("repo-dir", config.DefaultRepoDir,
		"Repository whose history lists the contributors")
	cmd.Flags().String("locale", "",
		"BCP 47 locale used to order names (default: from the configuration file, then root collation)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
