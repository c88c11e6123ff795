package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/creditroll/internal/config"
	"github.com/nao1215/creditroll/internal/log"
	"github.com/nao1215/creditroll/internal/model"
	"github.com/nao1215/creditroll/internal/pipeline"
	"github.com/nao1215/creditroll/internal/report"
	"github.com/spf13/cobra"
)

// runGenerateCmd executes the root command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := buildConfig(cmd, args, os.Getenv)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources, err := pipeline.NewSources(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API clients: %w", err)
	}

	return generate(ctx, cfg, sources, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from command flags, the configuration file
// and the environment read through getenv.
func buildConfig(cmd *cobra.Command, args []string, getenv func(string) string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Credentials = config.CredentialsFromEnv(getenv)
	cfg.Verbose = getVerboseFlag(cmd)

	if len(args) == 2 {
		cfg.MarkdownPath = args[0]
		cfg.StructuredPath = args[1]
	}

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.ProxyURL, err = cmd.Flags().GetString("proxy")
	if err != nil {
		return nil, err
	}

	cfg.RepoDir, err = cmd.Flags().GetString("repo-dir")
	if err != nil {
		return nil, err
	}

	cfg.Locale, err = cmd.Flags().GetString("locale")
	if err != nil {
		return nil, err
	}

	// An explicitly named configuration file must exist; otherwise the
	// defaults are used when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	switch {
	case configPath != "":
		cfg.Project, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case explicitConfigPath:
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	default:
		cfg.Project = config.NewFile()
	}

	return cfg, nil
}

// generate runs the pipeline, renders both documents in memory and only
// then writes them, so a failure leaves existing outputs untouched.
func generate(ctx context.Context, cfg *config.Config, sources pipeline.Sources, logger *slog.Logger, out io.Writer) error {
	coll, err := model.NewCollator(cfg.CollationLocale())
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	p := pipeline.DefaultPipeline(cfg, sources,
		pipeline.WithLogger(logger),
		pipeline.WithConcurrency(cfg.Concurrency),
	)

	start := time.Now()
	credits := model.NewCredits()
	if err := p.Execute(ctx, credits); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}

	doc := credits.Document(coll)

	markdownData, err := report.Render(markdownFactory(cfg), doc)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", cfg.MarkdownPath, err)
	}
	structuredData, err := report.Render(report.StructuredFactory(cfg.StructuredPath), doc)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", cfg.StructuredPath, err)
	}

	if err := report.WriteFile(cfg.MarkdownPath, markdownData); err != nil {
		return err
	}
	if err := report.WriteFile(cfg.StructuredPath, structuredData); err != nil {
		return err
	}

	logger.Info("credits written",
		"markdown", cfg.MarkdownPath,
		"structured", cfg.StructuredPath,
		"people", doc.Total(),
		"elapsed", time.Since(start),
	)

	fmt.Fprintf(out, "Wrote %s and %s\n", cfg.MarkdownPath, cfg.StructuredPath)
	_, err = report.NewSummaryWriter(out).Write(doc)
	return err
}

// markdownFactory returns the Markdown writer configured from cfg.
func markdownFactory(cfg *config.Config) report.Factory {
	project := cfg.Project
	return func(output io.Writer) report.Writer {
		return report.NewMarkdownWriter(output,
			report.WithProjectName(cfg.ProjectName()),
			report.WithIntro(report.Intro{
				Contributors: project.Text.Contributors,
				Translators:  project.Text.Translators,
				Supporters:   project.Text.Supporters,
			}),
			report.WithDonations(
				report.Donation{Platform: "Patreon", URL: project.Links.Patreon},
				report.Donation{Platform: "GitHub", URL: project.Links.GitHub},
				report.Donation{Platform: "PayPal", URL: project.Links.PayPal},
			),
		)
	}
}
