package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"net/http"

	"github.com/nao1215/creditroll/internal/model"
)

const (
	// SponsorsPageSize is the number of sponsors requested per page.
	SponsorsPageSize = 100

	// githubWebURL prefixes the resource paths returned by the API.
	githubWebURL = "https://github.com"
)

// sponsorsCountQuery asks only for the number of sponsors.
const sponsorsCountQuery = `query {
  viewer {
    sponsors(first: 0) {
      totalCount
    }
  }
}`

// sponsorsPageQuery fetches one page of sponsors after the given cursor.
// Users and organizations expose the same fields.
const sponsorsPageQuery = `query($after: String, $first: Int!) {
  viewer {
    sponsors(after: $after, first: $first) {
      nodes {
        __typename
        ... on User {
          resourcePath
          login
          name
        }
        ... on Organization {
          resourcePath
          login
          name
        }
      }
      pageInfo {
        endCursor
        hasNextPage
      }
    }
  }
}`

// SponsorNode is a sponsoring user or organization.
type SponsorNode struct {
	Typename     string  `json:"__typename" validate:"required,oneof=User Organization"`
	ResourcePath string  `json:"resourcePath" validate:"required,startswith=/"`
	Login        string  `json:"login" validate:"required"`
	Name         *string `json:"name"`
}

// DisplayName prefers the profile name and falls back to the login.
func (n SponsorNode) DisplayName() string {
	if n.Name != nil && *n.Name != "" {
		return *n.Name
	}
	return n.Login
}

// ProfileURL returns the sponsor's GitHub page.
func (n SponsorNode) ProfileURL() string {
	return githubWebURL + n.ResourcePath
}

// PageInfo is the GraphQL connection cursor information.
type PageInfo struct {
	EndCursor   *string `json:"endCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// SponsorsPage is one page of the viewer's sponsors.
type SponsorsPage struct {
	Nodes    []SponsorNode `json:"nodes" validate:"required,dive"`
	PageInfo PageInfo      `json:"pageInfo"`
}

type sponsorsCountData struct {
	Viewer struct {
		Sponsors struct {
			TotalCount *int `json:"totalCount" validate:"required,min=0"`
		} `json:"sponsors"`
	} `json:"viewer"`
}

type sponsorsPageData struct {
	Viewer struct {
		Sponsors SponsorsPage `json:"sponsors"`
	} `json:"viewer"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// SponsorsClient reads GitHub Sponsors through the GraphQL API.
type SponsorsClient struct {
	client   *http.Client
	endpoint string
	pageSize int
	logger   *slog.Logger
}

// SponsorsOption configures a SponsorsClient.
type SponsorsOption func(*SponsorsClient)

// WithSponsorsEndpoint sets the GraphQL endpoint, for example a test server.
func WithSponsorsEndpoint(endpoint string) SponsorsOption {
	return func(c *SponsorsClient) {
		c.endpoint = endpoint
	}
}

// WithSponsorsLogger sets a custom logger for the client.
func WithSponsorsLogger(logger *slog.Logger) SponsorsOption {
	return func(c *SponsorsClient) {
		c.logger = logger
	}
}

// NewSponsorsClient creates a client. The http.Client must already carry
// the bearer token (see NewHTTPClient).
func NewSponsorsClient(client *http.Client, opts ...SponsorsOption) *SponsorsClient {
	c := &SponsorsClient{
		client:   client,
		endpoint: "https://api.github.com/graphql",
		pageSize: SponsorsPageSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count returns the total number of sponsors.
func (c *SponsorsClient) Count(ctx context.Context) (int, error) {
	var data sponsorsCountData
	if err := c.query(ctx, "sponsors count", graphQLRequest{Query: sponsorsCountQuery}, &data); err != nil {
		return 0, err
	}
	return *data.Viewer.Sponsors.TotalCount, nil
}

// Pages returns the sponsors one page at a time, stopping once pages for
// total sponsors have been requested. It also stops early on an empty page
// or when the API reports no next page, so a sponsor leaving between the
// count and the last page cannot cause a request past the end.
// The sequence can be ranged over only once.
func (c *SponsorsClient) Pages(ctx context.Context, total int) iter.Seq2[SponsorsPage, error] {
	return singleUse(func(yield func(SponsorsPage, error) bool) {
		var cursor *string
		for fetched := 0; fetched < total; fetched += c.pageSize {
			page, err := c.fetchPage(ctx, cursor)
			if err != nil {
				yield(SponsorsPage{}, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			if len(page.Nodes) == 0 || !page.PageInfo.HasNextPage {
				return
			}
			cursor = page.PageInfo.EndCursor
		}
	})
}

// Sponsors returns every sponsor keyed by display name.
func (c *SponsorsClient) Sponsors(ctx context.Context) (model.Roster, error) {
	total, err := c.Count(ctx)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("github sponsors counted", "total", total)

	roster := model.NewRoster()
	for page, err := range c.Pages(ctx, total) {
		if err != nil {
			return nil, err
		}
		for _, node := range page.Nodes {
			roster.Set(node.DisplayName(), node.ProfileURL())
		}
	}

	c.logger.Debug("github sponsors read", "sponsors", len(roster))
	return roster, nil
}

// fetchPage requests the page after cursor; a nil cursor starts at the beginning.
func (c *SponsorsClient) fetchPage(ctx context.Context, cursor *string) (SponsorsPage, error) {
	req := graphQLRequest{
		Query: sponsorsPageQuery,
		Variables: map[string]any{
			"after": cursor,
			"first": c.pageSize,
		},
	}

	var data sponsorsPageData
	if err := c.query(ctx, "sponsors page", req, &data); err != nil {
		return SponsorsPage{}, err
	}
	return data.Viewer.Sponsors, nil
}

// query posts a GraphQL request and decodes its data into out.
func (c *SponsorsClient) query(ctx context.Context, what string, q graphQLRequest, out any) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("posting graphql query", "query", what, "endpoint", c.endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransport, what, err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{URL: c.endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, what, err)
	}
	if len(envelope.Errors) > 0 {
		gqlErr := &GraphQLError{}
		for _, e := range envelope.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		return gqlErr
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: %s: missing data", ErrUnexpectedResponse, what)
	}

	return decodeResponse(what, envelope.Data, out)
}
