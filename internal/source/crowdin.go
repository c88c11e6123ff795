package source

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nao1215/creditroll/internal/model"
)

const (
	// CrowdinPageSize is the number of members requested per page.
	// A shorter page marks the last one.
	CrowdinPageSize = 100

	// CrowdinRoleBlocked is the role of members banned from the project.
	CrowdinRoleBlocked = "blocked"

	// crowdinProfileURL is the public profile page prefix.
	crowdinProfileURL = "https://crowdin.com/profile/"
)

// CrowdinMember is one entry of the project members endpoint.
type CrowdinMember struct {
	Data CrowdinMemberData `json:"data"`
}

// CrowdinMemberData holds the member fields creditroll reads.
type CrowdinMemberData struct {
	ID       int    `json:"id"`
	Username string `json:"username" validate:"required"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// DisplayName prefers the full name and falls back to the username.
func (m CrowdinMemberData) DisplayName() string {
	if m.FullName != "" {
		return m.FullName
	}
	return m.Username
}

// ProfileURL returns the member's public Crowdin profile.
func (m CrowdinMemberData) ProfileURL() string {
	return crowdinProfileURL + m.Username
}

// Blocked reports whether the member is banned from the project.
func (m CrowdinMemberData) Blocked() bool {
	return m.Role == CrowdinRoleBlocked
}

// crowdinMembersPage is the body of GET /projects/{id}/members.
type crowdinMembersPage struct {
	Data []CrowdinMember `json:"data" validate:"required,dive"`
}

// CrowdinClient reads project members from the Crowdin API v2.
type CrowdinClient struct {
	client    *http.Client
	baseURL   string
	projectID string
	pageSize  int
	logger    *slog.Logger
}

// CrowdinOption configures a CrowdinClient.
type CrowdinOption func(*CrowdinClient)

// WithCrowdinBaseURL sets the API root, for example a test server.
func WithCrowdinBaseURL(baseURL string) CrowdinOption {
	return func(c *CrowdinClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithCrowdinLogger sets a custom logger for the client.
func WithCrowdinLogger(logger *slog.Logger) CrowdinOption {
	return func(c *CrowdinClient) {
		c.logger = logger
	}
}

// NewCrowdinClient creates a client for projectID. The http.Client must
// already carry the bearer token (see NewHTTPClient).
func NewCrowdinClient(client *http.Client, projectID string, opts ...CrowdinOption) *CrowdinClient {
	c := &CrowdinClient{
		client:    client,
		baseURL:   "https://crowdin.com/api/v2",
		projectID: projectID,
		pageSize:  CrowdinPageSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Members returns the project members one page at a time. The sequence
// stops after the first page shorter than CrowdinPageSize, or after the
// first error. It can be ranged over only once.
func (c *CrowdinClient) Members(ctx context.Context) iter.Seq2[[]CrowdinMember, error] {
	return singleUse(func(yield func([]CrowdinMember, error) bool) {
		for page := 0; ; page++ {
			members, err := c.fetchPage(ctx, page)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(members, nil) {
				return
			}
			if len(members) < c.pageSize {
				return
			}
		}
	})
}

// Translators returns every member who is not blocked, keyed by display name.
func (c *CrowdinClient) Translators(ctx context.Context) (model.Roster, error) {
	roster := model.NewRoster()
	skipped := 0

	for members, err := range c.Members(ctx) {
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if m.Data.Blocked() {
				skipped++
				continue
			}
			roster.Set(m.Data.DisplayName(), m.Data.ProfileURL())
		}
	}

	c.logger.Debug("crowdin members read",
		"project", c.projectID,
		"translators", len(roster),
		"blocked", skipped,
	)

	return roster, nil
}

// fetchPage requests one page of members.
func (c *CrowdinClient) fetchPage(ctx context.Context, page int) ([]CrowdinMember, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(page*c.pageSize))
	reqURL := fmt.Sprintf("%s/projects/%s/members?%s", c.baseURL, url.PathEscape(c.projectID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting crowdin members", "page", page, "url", reqURL)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: crowdin members: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{URL: reqURL, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var decoded crowdinMembersPage
	if err := decodeResponse("crowdin members", body, &decoded); err != nil {
		return nil, err
	}

	return decoded.Data, nil
}
