// Package gateway provides the HTTP boundary of the application: a JSON
// fetcher that issues a single GET request and decodes the response body.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"golang.org/x/oauth2"
)

const (
	defaultUserAgent = "github-orgs"
	acceptHeader     = "application/vnd.github+json"
)

// Fetcher defines the behavior of a gateway that retrieves JSON documents.
type Fetcher interface {
	GetJSON(ctx context.Context, url string) (any, error)
}

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures the HTTP client built by NewJSONFetcher.
type Options struct {
	// Token, when set, is sent as an OAuth2 bearer token.
	Token string
	// WaitOnRateLimit makes the transport sleep through GitHub secondary
	// rate limits and replay the request. This breaks the one request per
	// call guarantee, so it is off by default.
	WaitOnRateLimit bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// JSONFetcher is the concrete implementation of the Fetcher interface.
type JSONFetcher struct {
	doer      Doer
	userAgent string
}

var _ Fetcher = (*JSONFetcher)(nil)

// NewJSONFetcher is a constructor that builds the HTTP transport described
// by opts and returns a fetcher using it.
func NewJSONFetcher(opts Options) (*JSONFetcher, error) {
	var base http.RoundTripper = http.DefaultTransport
	if opts.WaitOnRateLimit {
		rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
		}
		base = rateLimitWaiter
	}
	if opts.Token != "" {
		base = &oauth2.Transport{
			Base:   base,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}
	f := NewJSONFetcherWithDoer(&http.Client{Transport: base})
	if opts.UserAgent != "" {
		f.userAgent = opts.UserAgent
	}
	return f, nil
}

// NewJSONFetcherWithDoer returns a fetcher that sends its requests through
// doer. Tests use it to substitute the network.
func NewJSONFetcherWithDoer(doer Doer) *JSONFetcher {
	return &JSONFetcher{doer: doer, userAgent: defaultUserAgent}
}

// GetJSON performs exactly one GET request to url and decodes the body.
// The result is whatever encoding/json produces for the document:
// map[string]any, []any, or a scalar, with numbers kept as json.Number.
// The body must hold exactly one JSON value. Errors from the transport and
// the decoder are returned as is. The status code is not inspected.
func (f *JSONFetcher) GetJSON(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	// Unmarshal checks the whole body, trailing data included.
	if err := json.Unmarshal(raw, new(json.RawMessage)); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
