package artifact

import (
	"context"
	"fmt"

	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/render"
	"github.com/umputun/llmstxt/pkg/selector"
	"github.com/umputun/llmstxt/pkg/settings"
)

// ContentSource provides the content tree
type ContentSource interface {
	ListedPages(ctx context.Context) ([]domain.Page, error)
	Site(ctx context.Context) (domain.Site, error)
}

// Builder renders artifacts from the content source
type Builder struct {
	source    ContentSource
	generator *render.Generator
}

// NewBuilder makes a builder rendering with the given generator
func NewBuilder(source ContentSource, generator *render.Generator) *Builder {
	return &Builder{source: source, generator: generator}
}

// Render loads listed pages and site, selects pages and renders requested artifact
func (b *Builder) Render(ctx context.Context, kind Kind, s settings.Settings) (string, error) {
	site, err := b.source.Site(ctx)
	if err != nil {
		return "", fmt.Errorf("get site: %w", err)
	}
	pages, err := b.source.ListedPages(ctx)
	if err != nil {
		return "", fmt.Errorf("get listed pages: %w", err)
	}
	selected := selector.Select(pages, s)

	switch kind {
	case KindLLMs:
		return b.generator.LLMsText(site, selected, s), nil
	case KindSitemap:
		return b.generator.Sitemap(site, selected, s)
	default:
		return "", fmt.Errorf("unknown artifact %q", kind)
	}
}
