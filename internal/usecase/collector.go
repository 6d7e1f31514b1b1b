// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/github-orgs/internal/domain"
)

// OrgSource is the part of client.OrgClient the collector depends on.
type OrgSource interface {
	Organization(ctx context.Context) (*github.Organization, error)
}

// SourceFactory builds a fresh OrgSource for one organization.
type SourceFactory func(org string) OrgSource

// Collector is the use case for summarizing several organizations.
// Each organization gets its own source, owned by a single goroutine.
type Collector struct {
	newSource SourceFactory
	logger    *log.Logger
}

// NewCollector creates a new Collector instance.
func NewCollector(newSource SourceFactory, logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Collector{
		newSource: newSource,
		logger:    logger,
	}
}

// Collect fetches every organization concurrently and returns their
// summaries sorted by name. The first failure cancels the remaining fetches
// and is returned.
func (c *Collector) Collect(ctx context.Context, orgs []string) ([]*domain.OrgSummary, error) {
	c.logger.Debug("Collecting organizations", "count", len(orgs))

	summaries := make([]*domain.OrgSummary, len(orgs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, name := range orgs {
		i, name := i, name
		eg.Go(func() error {
			org, err := c.newSource(name).Organization(egCtx)
			if err != nil {
				return fmt.Errorf("failed to fetch organization %s: %w", name, err)
			}
			summaries[i] = summarize(name, org)
			c.logger.Debug("Fetched organization", "org", name, "public_repos", summaries[i].PublicRepos)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	c.logger.Debug("Collection complete")
	return summaries, nil
}

func summarize(name string, org *github.Organization) *domain.OrgSummary {
	return &domain.OrgSummary{
		Name:        name,
		Login:       org.GetLogin(),
		ID:          org.GetID(),
		DisplayName: org.GetName(),
		Description: org.GetDescription(),
		PublicRepos: org.GetPublicRepos(),
		ReposURL:    org.GetReposURL(),
		HTMLURL:     org.GetHTMLURL(),
	}
}
