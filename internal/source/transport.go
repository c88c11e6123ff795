package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
	"golang.org/x/oauth2"
)

// HTTPOptions configures the clients built by NewHTTPClient.
type HTTPOptions struct {
	// Timeout is the per-request timeout. Zero means none.
	Timeout time.Duration

	// ProxyURL routes requests through a socks5, http or https proxy.
	ProxyURL string

	// UserAgent is set on every request when non-empty.
	UserAgent string
}

// NewHTTPClient returns a client that sends token as a bearer token on
// every request. The token is static; no authorization flow is performed.
func NewHTTPClient(ctx context.Context, token string, opts HTTPOptions) (*http.Client, error) {
	base, err := newTransport(opts.ProxyURL)
	if err != nil {
		return nil, err
	}

	var rt http.RoundTripper = base
	if opts.UserAgent != "" {
		rt = &userAgentTransport{base: rt, userAgent: opts.UserAgent}
	}

	// oauth2.NewClient picks the base transport from the context.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: rt})
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	client.Timeout = opts.Timeout

	return client, nil
}

// newTransport clones the default transport and configures the proxy.
func newTransport(proxyURL string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // DefaultTransport is always *http.Transport
	if proxyURL == "" {
		return transport, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy URL: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("create proxy dialer: %w", err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy dialer for %s does not support contexts", u.Scheme)
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer.DialContext
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
	}

	return transport, nil
}

// userAgentTransport sets the User-Agent header on outgoing requests.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
