// Package client provides a thin client for GitHub organizations built on
// top of the JSON gateway.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/github-orgs/internal/gateway"
	"github.com/naka-gawa/github-orgs/internal/memo"
	"github.com/naka-gawa/github-orgs/internal/nested"
)

// OrgURLTemplate is the GitHub REST endpoint for an organization.
const OrgURLTemplate = "https://api.github.com/orgs/%s"

// OrgURL substitutes name into OrgURLTemplate. The name is not escaped.
func OrgURL(name string) string {
	return fmt.Sprintf(OrgURLTemplate, name)
}

// OrgClient reads data about a single GitHub organization. The organization
// document and its repository list are fetched once per client and cached.
//
// An OrgClient is not safe for concurrent use.
type OrgClient struct {
	name    string
	fetcher gateway.Fetcher
	logger  *log.Logger

	org   memo.Cell[any]
	repos memo.Cell[[]any]
}

// Option configures an OrgClient.
type Option func(*OrgClient)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *OrgClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the organization called name.
func New(name string, fetcher gateway.Fetcher, opts ...Option) *OrgClient {
	c := &OrgClient{
		name:    name,
		fetcher: fetcher,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the organization name the client was created with.
func (c *OrgClient) Name() string {
	return c.name
}

// Org returns the decoded organization document. Fetch errors are returned
// unchanged.
func (c *OrgClient) Org(ctx context.Context) (any, error) {
	return c.org.Get(func() (any, error) {
		url := OrgURL(c.name)
		c.logger.Debug("Fetching organization", "org", c.name, "url", url)
		return c.fetcher.GetJSON(ctx, url)
	})
}

// PublicReposURL returns the repos_url field of the organization document.
func (c *OrgClient) PublicReposURL(ctx context.Context) (string, error) {
	org, err := c.Org(ctx)
	if err != nil {
		return "", err
	}
	doc, _ := org.(map[string]any)
	return nested.String(doc, "repos_url")
}

// ReposPayload returns the decoded list of the organization's public
// repositories.
func (c *OrgClient) ReposPayload(ctx context.Context) ([]any, error) {
	return c.repos.Get(func() ([]any, error) {
		url, err := c.PublicReposURL(ctx)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("Fetching repositories", "org", c.name, "url", url)
		payload, err := c.fetcher.GetJSON(ctx, url)
		if err != nil {
			return nil, err
		}
		repos, ok := payload.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: repositories of %s are %T, want a list", ErrUnexpectedPayload, c.name, payload)
		}
		return repos, nil
	})
}

// PublicRepos returns the names of the organization's public repositories.
// When license is not empty only repositories under that license key are
// returned.
func (c *OrgClient) PublicRepos(ctx context.Context, license string) ([]string, error) {
	payload, err := c.ReposPayload(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(payload))
	for i, item := range payload {
		repo, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: repository %d of %s is %T", ErrUnexpectedPayload, i, c.name, item)
		}
		if license != "" && !HasLicense(repo, license) {
			continue
		}
		name, err := nested.String(repo, "name")
		if err != nil {
			return nil, fmt.Errorf("repository %d of %s: %w", i, c.name, err)
		}
		names = append(names, name)
	}
	c.logger.Debug("Listed repositories", "org", c.name, "license", license, "count", len(names))
	return names, nil
}

// HasLicense reports whether repo["license"]["key"] equals licenseKey.
// A repository without license data has no license.
func HasLicense(repo map[string]any, licenseKey string) bool {
	if licenseKey == "" {
		return false
	}
	key, err := nested.String(repo, "license", "key")
	if err != nil {
		return false
	}
	return key == licenseKey
}

// Organization returns the organization document decoded into the
// go-github Organization type. A document without a login, such as a
// GitHub error body, fails with the *nested.KeyError for "login".
func (c *OrgClient) Organization(ctx context.Context) (*github.Organization, error) {
	org, err := c.Org(ctx)
	if err != nil {
		return nil, err
	}
	doc, ok := org.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: organization %s is %T, want an object", ErrUnexpectedPayload, c.name, org)
	}
	if _, err := nested.String(doc, "login"); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(org)
	if err != nil {
		return nil, fmt.Errorf("failed to encode organization %s: %w", c.name, err)
	}
	var typed github.Organization
	if err := json.Unmarshal(raw, &typed); err != nil {
		return nil, fmt.Errorf("failed to decode organization %s: %w", c.name, err)
	}
	return &typed, nil
}
