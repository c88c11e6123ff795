package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	"github.com/nao1215/creditroll/internal/model"
)

// shortlogLine matches one line of `git shortlog -sn`: leading whitespace,
// the commit count, whitespace, then the author name.
var shortlogLine = regexp.MustCompile(`(?m)^\s+([0-9]+)\s+(.+)$`)

// shortlogArgs are the git arguments used to summarize authorship.
var shortlogArgs = []string{"shortlog", "-sn", "--all"}

// CommandRunner runs an external command and returns its standard output.
// A non-zero exit must be reported as a *ProcessError.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ProcessError{
				Command:  strings.Join(append([]string{name}, args...), " "),
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	return stdout.Bytes(), nil
}

// GitReader lists commit authors from local history.
type GitReader struct {
	runner          CommandRunner
	dir             string
	contributorsURL string
	logger          *slog.Logger
}

// GitReaderOption configures a GitReader.
type GitReaderOption func(*GitReader)

// WithCommandRunner replaces the command runner, mainly for tests.
func WithCommandRunner(r CommandRunner) GitReaderOption {
	return func(g *GitReader) {
		g.runner = r
	}
}

// WithGitLogger sets a custom logger for the reader.
func WithGitLogger(logger *slog.Logger) GitReaderOption {
	return func(g *GitReader) {
		g.logger = logger
	}
}

// NewGitReader creates a reader for the repository in dir. Every author
// found links to contributorsURL.
func NewGitReader(dir, contributorsURL string, opts ...GitReaderOption) *GitReader {
	g := &GitReader{
		runner:          ExecRunner{},
		dir:             dir,
		contributorsURL: contributorsURL,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Read runs git shortlog and returns every distinct author.
func (g *GitReader) Read(ctx context.Context) (model.Roster, error) {
	g.logger.Debug("reading git history", "dir", g.dir)

	out, err := g.runner.Run(ctx, g.dir, "git", shortlogArgs...)
	if err != nil {
		return nil, err
	}

	roster := ParseShortlog(string(out), g.contributorsURL)
	g.logger.Debug("git history read", "authors", len(roster))

	return roster, nil
}

// ParseShortlog extracts author names from `git shortlog -sn` output.
// Commit counts are discarded and every name links to url.
func ParseShortlog(output, url string) model.Roster {
	roster := model.NewRoster()
	for _, m := range shortlogLine.FindAllStringSubmatch(output, -1) {
		name := strings.TrimRight(m[2], "\r")
		roster.SetIfAbsent(name, url)
	}
	return roster
}
