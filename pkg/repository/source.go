package repository

import (
	"context"

	"github.com/umputun/llmstxt/pkg/domain"
)

// ContentSource exposes the stored content tree to artifact builder.
// BaseURL is used as site url when the stored site record has none.
type ContentSource struct {
	Pages   *PageRepository
	Sites   *SiteRepository
	BaseURL string
}

// ListedPages returns listed pages in tree order
func (c ContentSource) ListedPages(ctx context.Context) ([]domain.Page, error) {
	return c.Pages.ListedPages(ctx)
}

// Site returns site metadata
func (c ContentSource) Site(ctx context.Context) (domain.Site, error) {
	site, err := c.Sites.Get(ctx)
	if err != nil {
		return domain.Site{}, err
	}
	if site.URL == "" {
		site.URL = c.BaseURL
	}
	return site, nil
}

// Source makes content source backed by these repositories
func (r *Repositories) Source(baseURL string) ContentSource {
	return ContentSource{Pages: r.Page, Sites: r.Site, BaseURL: baseURL}
}
