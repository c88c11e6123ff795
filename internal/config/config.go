package config

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "creditroll"

	// DefaultTimeout is the per-request HTTP timeout. Zero disables it.
	DefaultTimeout time.Duration = 0

	// DefaultConcurrency runs the discovery steps one after another.
	DefaultConcurrency = 1

	// DefaultRepoDir is the repository whose history is read.
	DefaultRepoDir = "."

	// DefaultUserAgent identifies creditroll in HTTP requests.
	// The GitHub API rejects requests without a User-Agent.
	DefaultUserAgent = "creditroll (+https://github.com/nao1215/creditroll)"

	// DefaultCrowdinBaseURL is the Crowdin API v2 root.
	DefaultCrowdinBaseURL = "https://crowdin.com/api/v2"

	// DefaultGitHubGraphQLURL is the GitHub GraphQL endpoint.
	DefaultGitHubGraphQLURL = "https://api.github.com/graphql"
)

// Credentials holds the values read from the environment.
// It is built once at startup and passed into each client.
type Credentials struct {
	// Repository is the GitHub repository in "owner/name" form (GITHUB_REPOSITORY).
	Repository string

	// CrowdinProjectID is the numeric Crowdin project identifier (CROWDIN_PROJECTID).
	CrowdinProjectID string

	// CrowdinToken is a Crowdin personal access token (CROWDIN_TOKEN).
	CrowdinToken string

	// GitHubToken is a GitHub token allowed to read the viewer's sponsors (GITHUB_TOKEN).
	GitHubToken string
}

// Config holds all configuration options for creditroll.
// It is populated from the environment, the configuration file and CLI
// flags, then passed through the application.
type Config struct {
	// Credentials for the data sources.
	Credentials Credentials

	// Project holds the settings read from the configuration file.
	Project *File

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory and the XDG config directory.
	ConfigFilePath string

	// MarkdownPath is where the Markdown document is written.
	MarkdownPath string

	// StructuredPath is where the structured document is written.
	// A .yaml or .yml extension selects YAML; anything else is JSON.
	StructuredPath string

	// RepoDir is the working directory for git.
	RepoDir string

	// Locale is the BCP 47 locale used to order names.
	// Empty means the value from the configuration file, then the root collation.
	Locale string

	// Timeout is the per-request HTTP timeout. Zero waits forever.
	Timeout time.Duration

	// Concurrency is the number of discovery steps that may run at once.
	// 1 runs them in order.
	Concurrency int

	// ProxyURL routes API requests through a proxy (socks5, http or https).
	ProxyURL string

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Project:     NewFile(),
		RepoDir:     DefaultRepoDir,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		UserAgent:   DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for creditroll.
// On Linux: ~/.config/creditroll
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ContributorsURL returns the repository's contributors graph page,
// which every contributor found in history links to.
func (c *Config) ContributorsURL() string {
	return "https://github.com/" + c.Credentials.Repository + "/graphs/contributors"
}

// ProjectName returns the configured project name, falling back to the
// repository name.
func (c *Config) ProjectName() string {
	if c.Project != nil && c.Project.Name != "" {
		return c.Project.Name
	}
	if _, name, ok := strings.Cut(c.Credentials.Repository, "/"); ok && name != "" {
		return name
	}
	return c.Credentials.Repository
}

// CollationLocale returns the locale used to order names.
func (c *Config) CollationLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	if c.Project != nil {
		return c.Project.Locale
	}
	return ""
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.MarkdownPath == "" || c.StructuredPath == "" {
		return ErrNoOutput
	}

	if err := c.Credentials.Validate(); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.ProxyURL != "" {
		u, err := url.Parse(c.ProxyURL)
		if err != nil || u.Host == "" {
			return ErrInvalidProxy
		}
		switch u.Scheme {
		case "socks5", "socks5h", "http", "https":
		default:
			return ErrInvalidProxy
		}
	}

	return nil
}

// Validate checks that every credential is present.
func (c Credentials) Validate() error {
	if c.Repository == "" {
		return ErrMissingRepository
	}
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return ErrInvalidRepository
	}
	if c.CrowdinProjectID == "" {
		return ErrMissingCrowdinProject
	}
	if c.CrowdinToken == "" {
		return ErrMissingCrowdinToken
	}
	if c.GitHubToken == "" {
		return ErrMissingGitHubToken
	}
	return nil
}
