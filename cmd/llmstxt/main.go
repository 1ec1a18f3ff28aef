package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/llmstxt/pkg/artifact"
	"github.com/umputun/llmstxt/pkg/cache"
	"github.com/umputun/llmstxt/pkg/config"
	"github.com/umputun/llmstxt/pkg/domain"
	"github.com/umputun/llmstxt/pkg/importer"
	"github.com/umputun/llmstxt/pkg/render"
	"github.com/umputun/llmstxt/pkg/repository"
	"github.com/umputun/llmstxt/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string   `short:"c" long:"config" env:"CONFIG" description:"configuration file"`
	Listen  string   `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Content string   `long:"content" env:"CONTENT" description:"yaml content seed file imported on start"`
	Feeds   []string `long:"import-feed" env:"IMPORT_FEED" env-delim:"," description:"rss or atom feed imported as pages on start"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	log.Printf("[INFO] starting llmstxt version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires storage, cache, importer and server, and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repos.Close()

	store, closeStore, err := makeStore(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to make cache store: %w", err)
	}
	defer closeStore()

	builder := artifact.NewBuilder(repos.Source(cfg.Server.BaseURL), render.NewGenerator(time.Now))
	gate := artifact.NewGate(store, builder)

	imp := importer.New(repos.Page, repos.Site, importer.Opts{
		Concurrency: cfg.Import.Concurrency,
		Timeout:     cfg.Import.Timeout,
		UserAgent:   "llmstxt/" + revision,
	})
	if err := importContent(ctx, imp, opts.Content, append(cfg.Import.Feeds, opts.Feeds...)); err != nil {
		return err
	}
	// content changed outside of the api, drop anything cached before start
	if err := gate.Invalidate(ctx, domain.EventSiteUpdated); err != nil {
		log.Printf("[WARN] %v", err)
	}

	srv := server.New(server.Params{
		Config:   cfg,
		Pages:    repos.Page,
		Site:     repos.Site,
		Settings: repos.Setting,
		Gate:     gate,
		Version:  revision,
		Debug:    opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeStore returns artifact cache store for configured type, nil store means no caching
func makeStore(ctx context.Context, cfg config.CacheConfig) (cache.Store, func(), error) {
	switch cfg.Type {
	case config.CacheNone:
		log.Printf("[INFO] artifact cache disabled")
		return nil, func() {}, nil
	case config.CacheRedis:
		r, err := cache.NewRedis(ctx, cache.RedisOpts{Addr: cfg.RedisAddr, Password: cfg.RedisPassword,
			DB: cfg.RedisDB, Prefix: cfg.Prefix})
		if err != nil {
			return nil, nil, err
		}
		return r, func() {
			if err := r.Close(); err != nil {
				log.Printf("[WARN] can't close redis: %v", err)
			}
		}, nil
	default:
		log.Printf("[INFO] in-memory artifact cache, max keys %d", cfg.MaxKeys)
		return cache.NewMemory(cfg.MaxKeys), func() {}, nil
	}
}

// importContent seeds the content tree from yaml file and feeds, failed feeds are not fatal
func importContent(ctx context.Context, imp *importer.Importer, seed string, feeds []string) error {
	if seed != "" {
		stats, err := imp.ImportYAML(ctx, seed)
		if err != nil {
			return fmt.Errorf("failed to import content: %w", err)
		}
		log.Printf("[INFO] imported %d pages from %s, site updated: %v", stats.Pages, seed, stats.SiteUpdated)
	}
	if len(feeds) > 0 {
		stats, err := imp.ImportFeeds(ctx, feeds)
		if err != nil {
			return fmt.Errorf("failed to import feeds: %w", err)
		}
		log.Printf("[INFO] imported %d pages from %d feeds, failed %d", stats.Pages, len(feeds), stats.FailedFeeds)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
