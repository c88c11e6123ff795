package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/creditroll/internal/config"
	"github.com/nao1215/creditroll/internal/model"
	"github.com/nao1215/creditroll/internal/override"
	"github.com/nao1215/creditroll/internal/source"
)

// FetchFunc discovers the roster of one group from its source.
type FetchFunc func(ctx context.Context) (model.Roster, error)

// OverrideLoader reads an override file.
type OverrideLoader interface {
	Load(path string) (model.Roster, error)
}

// GroupStep discovers one group, merges its overrides and stores the result.
type GroupStep struct {
	// group is the roster this step fills.
	group model.Group

	// fetch discovers the roster. Nil means the group has no source and is
	// built from its overrides alone.
	fetch FetchFunc

	// overridePath is the group's override file. Empty skips the merge.
	overridePath string

	// loader reads overridePath.
	loader OverrideLoader

	// logger for structured logging.
	logger *slog.Logger
}

// GroupStepOption configures a GroupStep.
type GroupStepOption func(*GroupStep)

// WithOverrideFile sets the override file merged over the discovered roster.
func WithOverrideFile(path string) GroupStepOption {
	return func(s *GroupStep) {
		s.overridePath = path
	}
}

// WithOverrideLoader replaces the loader used to read the override file.
func WithOverrideLoader(loader OverrideLoader) GroupStepOption {
	return func(s *GroupStep) {
		s.loader = loader
	}
}

// WithStepLogger sets a custom logger for the step.
func WithStepLogger(logger *slog.Logger) GroupStepOption {
	return func(s *GroupStep) {
		s.logger = logger
	}
}

// NewGroupStep creates a step for group g. fetch may be nil.
func NewGroupStep(g model.Group, fetch FetchFunc, opts ...GroupStepOption) *GroupStep {
	s := &GroupStep{
		group:  g,
		fetch:  fetch,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		s.loader = override.NewLoader(override.WithLogger(s.logger))
	}

	return s
}

// NewContributorStep reads contributors from version-control history.
func NewContributorStep(reader *source.GitReader, opts ...GroupStepOption) *GroupStep {
	return NewGroupStep(model.GroupContributor, reader.Read, opts...)
}

// NewTranslatorStep reads translators from the Crowdin project.
func NewTranslatorStep(client *source.CrowdinClient, opts ...GroupStepOption) *GroupStep {
	return NewGroupStep(model.GroupTranslator, client.Translators, opts...)
}

// NewGitHubSponsorStep reads the GitHub Sponsors of the token owner.
func NewGitHubSponsorStep(client *source.SponsorsClient, opts ...GroupStepOption) *GroupStep {
	return NewGroupStep(model.GroupGitHubSponsor, client.Sponsors, opts...)
}

// NewPatreonStep builds the Patreon patrons from the override file only.
func NewPatreonStep(opts ...GroupStepOption) *GroupStep {
	return NewGroupStep(model.GroupPatreonSponsor, nil, opts...)
}

// Name returns the step name.
func (s *GroupStep) Name() string {
	return s.group.String()
}

// Group returns the group this step fills.
func (s *GroupStep) Group() model.Group {
	return s.group
}

// Do executes the step. Discovered entries are merged with the override
// file, whose entries win, and the merged roster replaces the group's
// roster in credits.
func (s *GroupStep) Do(ctx context.Context, credits *model.Credits) error {
	discovered := model.NewRoster()
	if s.fetch != nil {
		r, err := s.fetch(ctx)
		if err != nil {
			return err
		}
		discovered = r
	}

	merged := discovered
	if s.overridePath != "" {
		overrides, err := s.loader.Load(s.overridePath)
		if err != nil {
			return err
		}
		merged = discovered.Merge(overrides)
	}

	s.logger.Info("group collected",
		"group", s.group.String(),
		"discovered", len(discovered),
		"total", len(merged),
	)

	credits.Set(s.group, merged)
	return nil
}

// Sources holds the clients of every discovery source.
type Sources struct {
	Git      *source.GitReader
	Crowdin  *source.CrowdinClient
	Sponsors *source.SponsorsClient
}

// NewSources builds the source clients described by cfg. Each API client
// gets its own HTTP client carrying that API's token.
// A nil logger means slog.Default.
func NewSources(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Sources, error) {
	if logger == nil {
		logger = slog.Default()
	}

	httpOpts := source.HTTPOptions{
		Timeout:   cfg.Timeout,
		ProxyURL:  cfg.ProxyURL,
		UserAgent: cfg.UserAgent,
	}

	crowdinHTTP, err := source.NewHTTPClient(ctx, cfg.Credentials.CrowdinToken, httpOpts)
	if err != nil {
		return Sources{}, err
	}
	githubHTTP, err := source.NewHTTPClient(ctx, cfg.Credentials.GitHubToken, httpOpts)
	if err != nil {
		return Sources{}, err
	}

	return Sources{
		Git: source.NewGitReader(cfg.RepoDir, cfg.ContributorsURL(),
			source.WithGitLogger(logger),
		),
		Crowdin: source.NewCrowdinClient(crowdinHTTP, cfg.Credentials.CrowdinProjectID,
			source.WithCrowdinBaseURL(cfg.Project.Endpoints.Crowdin),
			source.WithCrowdinLogger(logger),
		),
		Sponsors: source.NewSponsorsClient(githubHTTP,
			source.WithSponsorsEndpoint(cfg.Project.Endpoints.GitHubGraphQL),
			source.WithSponsorsLogger(logger),
		),
	}, nil
}

// DefaultPipeline creates a pipeline with one step per group, in report
// order, each merging the override file configured for it.
func DefaultPipeline(cfg *config.Config, sources Sources, pipelineOpts ...Option) *Pipeline {
	p := New(pipelineOpts...)

	overrides := cfg.Project.Overrides
	stepOpts := func(path string) []GroupStepOption {
		return []GroupStepOption{
			WithOverrideFile(path),
			WithStepLogger(p.logger),
		}
	}

	p.AddSteps(
		NewContributorStep(sources.Git, stepOpts(overrides.Contributors)...),
		NewTranslatorStep(sources.Crowdin, stepOpts(overrides.Translators)...),
		NewGitHubSponsorStep(sources.Sponsors, stepOpts(overrides.GitHubSponsors)...),
		NewPatreonStep(stepOpts(overrides.Patreon)...),
	)

	return p
}
