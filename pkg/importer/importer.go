// Package importer seeds the content tree from a YAML file or from RSS/Atom feeds
package importer

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/llmstxt/pkg/domain"
)

//go:generate moq -out mocks/pages.go -pkg mocks -skip-ensure -fmt goimports . PageWriter
//go:generate moq -out mocks/site.go -pkg mocks -skip-ensure -fmt goimports . SiteWriter

// PageWriter stores imported pages
type PageWriter interface {
	Upsert(ctx context.Context, page domain.Page) (domain.Page, error)
}

// SiteWriter stores imported site metadata
type SiteWriter interface {
	Update(ctx context.Context, site domain.Site) error
}

// Opts defines importer parameters
type Opts struct {
	Concurrency int           // max concurrent feed fetches
	Timeout     time.Duration // http timeout per feed request
	UserAgent   string
}

// Stats reports import results
type Stats struct {
	Pages       int
	SiteUpdated bool
	FailedFeeds int
}

// Importer writes external content into the content tree
type Importer struct {
	pages  PageWriter
	site   SiteWriter
	parser *Parser
	opts   Opts
}

// New makes an importer
func New(pages PageWriter, site SiteWriter, opts Opts) *Importer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "llmstxt/1.0"
	}
	return &Importer{pages: pages, site: site, opts: opts, parser: NewParser(opts.Timeout, opts.UserAgent)}
}

// ImportYAML loads content seed file and stores its site and pages
func (im *Importer) ImportYAML(ctx context.Context, path string) (Stats, error) {
	seed, err := LoadSeed(path)
	if err != nil {
		return Stats{}, fmt.Errorf("load seed: %w", err)
	}

	stats := Stats{}
	if site, ok := seed.site(); ok {
		if err := im.site.Update(ctx, site); err != nil {
			return stats, fmt.Errorf("update site: %w", err)
		}
		stats.SiteUpdated = true
	}

	pages, err := seed.pages()
	if err != nil {
		return stats, err
	}
	n, err := im.store(ctx, pages)
	stats.Pages = n
	if err != nil {
		return stats, err
	}
	log.Printf("[INFO] imported %d pages from %s", n, path)
	return stats, nil
}

// ImportFeeds fetches feeds concurrently and stores their items as pages.
// Failed feeds are logged and counted, pages are stored in feed order.
func (im *Importer) ImportFeeds(ctx context.Context, urls []string) (Stats, error) {
	results := make([][]domain.Page, len(urls))
	failed := make([]bool, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.opts.Concurrency)
	for i, u := range urls {
		g.Go(func() error {
			feed, err := im.parser.Parse(gctx, u)
			if err != nil {
				log.Printf("[WARN] failed to import feed %s: %v", u, err)
				failed[i] = true
				return nil
			}
			results[i] = feed.Pages()
			log.Printf("[DEBUG] fetched %d items from %s", len(results[i]), u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("fetch feeds: %w", err)
	}

	stats := Stats{}
	for i := range urls {
		if failed[i] {
			stats.FailedFeeds++
			continue
		}
		n, err := im.store(ctx, results[i])
		stats.Pages += n
		if err != nil {
			return stats, err
		}
	}
	log.Printf("[INFO] imported %d pages from %d feeds, %d failed", stats.Pages, len(urls), stats.FailedFeeds)
	return stats, nil
}

func (im *Importer) store(ctx context.Context, pages []domain.Page) (int, error) {
	for i, p := range pages {
		if _, err := im.pages.Upsert(ctx, p); err != nil {
			return i, fmt.Errorf("store page %q: %w", p.ID, err)
		}
	}
	return len(pages), nil
}
