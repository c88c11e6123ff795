package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so that callers can use
// errors.Is() to tell them apart.
var (
	// ErrNoOutput is returned when either output path is empty.
	ErrNoOutput = errors.New("no output specified: provide a Markdown path and a structured output path")

	// ErrMissingRepository is returned when GITHUB_REPOSITORY is not set.
	// The repository identifier is needed to link contributors to the
	// repository's contributors graph.
	ErrMissingRepository = errors.New("missing repository: set GITHUB_REPOSITORY (owner/name)")

	// ErrInvalidRepository is returned when the repository is not in owner/name form.
	ErrInvalidRepository = errors.New("invalid repository: expected owner/name")

	// ErrMissingCrowdinProject is returned when CROWDIN_PROJECTID is not set.
	ErrMissingCrowdinProject = errors.New("missing Crowdin project: set CROWDIN_PROJECTID")

	// ErrMissingCrowdinToken is returned when CROWDIN_TOKEN is not set.
	ErrMissingCrowdinToken = errors.New("missing Crowdin token: set CROWDIN_TOKEN")

	// ErrMissingGitHubToken is returned when GITHUB_TOKEN is not set.
	ErrMissingGitHubToken = errors.New("missing GitHub token: set GITHUB_TOKEN")

	// ErrInvalidTimeout is returned when the request timeout is negative.
	// Zero means no timeout.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrInvalidConcurrency is returned when concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidProxy is returned when the proxy URL cannot be parsed or
	// uses an unsupported scheme.
	ErrInvalidProxy = errors.New("invalid proxy: expected socks5://host:port, http://host:port or https://host:port")
)
