// Package artifact serves generated llms.txt and sitemap.xml through a cache gate.
package artifact

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/llmstxt/pkg/cache"
	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/settings"
)

//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . ContentSource

// Kind identifies generated artifact, its value is used as cache key
type Kind string

// supported artifacts
const (
	KindLLMs    Kind = "llms"
	KindSitemap Kind = "sitemap"
)

// Renderer produces artifact body on cache miss
type Renderer interface {
	Render(ctx context.Context, kind Kind, s settings.Settings) (string, error)
}

// Response is the outcome of serving an artifact
type Response struct {
	Status      int
	ContentType string
	Body        string
	FromCache   bool
}

// Gate serves artifacts, consulting the cache store before rendering
type Gate struct {
	store    cache.Store
	renderer Renderer
}

// NewGate makes a gate, nil store disables caching entirely
func NewGate(store cache.Store, renderer Renderer) *Gate {
	if store == nil {
		store = cache.Nop{}
	}
	return &Gate{store: store, renderer: renderer}
}

// Serve returns the artifact. Disabled artifacts get 404 without touching the cache,
// cached value is returned verbatim, otherwise body rendered and stored if caching enabled.
// Cache failures are logged and treated as a miss.
func (g *Gate) Serve(ctx context.Context, kind Kind, s settings.Settings) (Response, error) {
	if !kind.enabled(s) {
		return Response{Status: http.StatusNotFound, ContentType: "text/plain; charset=utf-8", Body: kind.disabledMessage()}, nil
	}

	key := string(kind)
	if s.CacheEnabled {
		cached, found, err := g.store.Get(ctx, key)
		if err != nil {
			log.Printf("[WARN] can't get %s from cache: %v", key, err)
		}
		if err == nil && found && cached != "" {
			return Response{Status: http.StatusOK, ContentType: kind.ContentType(), Body: cached, FromCache: true}, nil
		}
	}

	body, err := g.renderer.Render(ctx, kind, s)
	if err != nil {
		return Response{}, fmt.Errorf("render %s: %w", key, err)
	}

	if s.CacheEnabled {
		ttl := time.Duration(s.CacheDurationMinutes) * time.Minute
		if err := g.store.Set(ctx, key, body, ttl); err != nil {
			log.Printf("[WARN] can't store %s in cache: %v", key, err)
		}
	}

	return Response{Status: http.StatusOK, ContentType: kind.ContentType(), Body: body}, nil
}

// Invalidate flushes all cached artifacts, called on every content mutation
func (g *Gate) Invalidate(ctx context.Context, event domain.ContentEvent) error {
	if err := g.store.Flush(ctx); err != nil {
		return fmt.Errorf("flush cache on %s: %w", event, err)
	}
	log.Printf("[DEBUG] artifacts cache flushed on %s", event)
	return nil
}

// ContentType of the rendered artifact
func (k Kind) ContentType() string {
	if k == KindSitemap {
		return "application/xml; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

func (k Kind) enabled(s settings.Settings) bool {
	if k == KindSitemap {
		return s.SitemapEnabled
	}
	return s.Enabled
}

func (k Kind) disabledMessage() string {
	if k == KindSitemap {
		return "Sitemap is disabled"
	}
	return "LLMs.txt is disabled"
}
