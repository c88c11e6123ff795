package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport is returned when a request could not be sent or its
	// response could not be read.
	ErrTransport = errors.New("transport failure")

	// ErrUnexpectedResponse is returned when a response body does not have
	// the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected response shape")

	// ErrSequenceConsumed is yielded when a page sequence is ranged over a
	// second time. Page sequences read from the network and cannot restart.
	ErrSequenceConsumed = errors.New("page sequence already consumed")
)

// ProcessError is returned when an external command exits with a non-zero status.
type ProcessError struct {
	// Command is the command line that was run.
	Command string

	// ExitCode is the process exit status.
	ExitCode int

	// Stderr is everything the process wrote to standard error.
	Stderr string
}

// Error implements error.
func (e *ProcessError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Command, e.ExitCode, stderr)
}

// HTTPError is returned when an API answers with an unexpected status code.
// Body holds the raw response body.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.URL, e.StatusCode, strings.TrimSpace(e.Body))
}

// GraphQLError is returned when a GraphQL response carries an errors array.
type GraphQLError struct {
	Messages []string
}

// Error implements error.
func (e *GraphQLError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}
