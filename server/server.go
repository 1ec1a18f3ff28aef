// Package server implements http server serving llms.txt, sitemap.xml and the admin api
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/llmstxt/pkg/artifact"
	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/settings"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/pages.go -pkg mocks -skip-ensure -fmt goimports . PageStore
//go:generate moq -out mocks/site.go -pkg mocks -skip-ensure -fmt goimports . SiteStore
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	pages    PageStore
	site     SiteStore
	settings SettingStore
	gate     Gate
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetSettingsLayer() settings.Layer
}

// PageStore manages content pages
type PageStore interface {
	All(ctx context.Context) ([]domain.Page, error)
	Get(ctx context.Context, id string) (domain.Page, error)
	Create(ctx context.Context, page domain.Page) (domain.Page, error)
	Update(ctx context.Context, page domain.Page) (domain.Page, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (total, listed int, err error)
}

// SiteStore manages site metadata
type SiteStore interface {
	Get(ctx context.Context) (domain.Site, error)
	Update(ctx context.Context, site domain.Site) error
}

// SettingStore keeps live setting overrides
type SettingStore interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetAll(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
}

// Gate serves generated artifacts and invalidates them on content changes
type Gate interface {
	Serve(ctx context.Context, kind artifact.Kind, s settings.Settings) (artifact.Response, error)
	Invalidate(ctx context.Context, event domain.ContentEvent) error
}

// Params groups server dependencies
type Params struct {
	Config   ConfigProvider
	Pages    PageStore
	Site     SiteStore
	Settings SettingStore
	Gate     Gate
	Version  string
	Debug    bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:   p.Config,
		pages:    p.Pages,
		site:     p.Site,
		settings: p.Settings,
		gate:     p.Gate,
		version:  p.Version,
		debug:    p.Debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// ServeHTTP makes server usable as http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("llmstxt", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /llms.txt", s.llmsHandler)
	s.router.HandleFunc("GET /sitemap.xml", s.sitemapHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /pages", s.listPagesHandler)
		r.HandleFunc("POST /pages", s.createPageHandler)
		r.HandleFunc("GET /pages/{id...}", s.getPageHandler)
		r.HandleFunc("PUT /pages/{id...}", s.updatePageHandler)
		r.HandleFunc("DELETE /pages/{id...}", s.deletePageHandler)

		r.HandleFunc("GET /site", s.getSiteHandler)
		r.HandleFunc("PUT /site", s.updateSiteHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)

		r.HandleFunc("POST /cache/flush", s.flushCacheHandler)
	})
}

// settingsFor builds settings for a single request: defaults, file layer, live overrides.
// Failure to load overrides is logged and the file layer is used alone.
func (s *Server) settingsFor(ctx context.Context) settings.Settings {
	fileLayer := s.config.GetSettingsLayer()
	overrides, err := s.settings.GetAll(ctx)
	if err != nil {
		log.Printf("[WARN] can't load settings overrides, using file config: %v", err)
		return settings.Build(fileLayer)
	}
	return settings.Build(fileLayer, settings.FromMap(overrides))
}

// invalidate drops cached artifacts after a content mutation, errors are logged only
func (s *Server) invalidate(ctx context.Context, events ...domain.ContentEvent) {
	for _, ev := range events {
		if err := s.gate.Invalidate(ctx, ev); err != nil {
			log.Printf("[WARN] can't invalidate artifacts: %v", err)
		}
	}
}
