package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current directory.
const DefaultConfigFile = ".creditroll.yaml"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Environment variable names read by CredentialsFromEnv.
const (
	EnvRepository       = "GITHUB_REPOSITORY"
	EnvCrowdinProjectID = "CROWDIN_PROJECTID"
	EnvCrowdinToken     = "CROWDIN_TOKEN"
	EnvGitHubToken      = "GITHUB_TOKEN"
)

// LoadConfigFile loads project settings from a YAML file and applies defaults.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f.ApplyDefaults()

	return &f, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .creditroll.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), xdgConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Files that do not exist are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// CredentialsFromEnv reads the credentials through getenv.
// Pass os.Getenv in production and a map lookup in tests.
func CredentialsFromEnv(getenv func(string) string) Credentials {
	return Credentials{
		Repository:       getenv(EnvRepository),
		CrowdinProjectID: getenv(EnvCrowdinProjectID),
		CrowdinToken:     getenv(EnvCrowdinToken),
		GitHubToken:      getenv(EnvGitHubToken),
	}
}
