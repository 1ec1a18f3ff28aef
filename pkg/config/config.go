// Package config loads the service configuration from a YAML file
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/llmstxt/pkg/settings"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// cache types
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Cache    CacheConfig    `yaml:"cache" json:"cache" jsonschema:"description=Artifact cache store"`
	Import   ImportConfig   `yaml:"import" json:"import" jsonschema:"description=Content import from feeds"`
	LLMs     settings.Layer `yaml:"llms" json:"llms" jsonschema:"description=Generation settings applied on top of built-in defaults"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public site URL used when site record has no url"`
}

// DatabaseConfig holds sqlite connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:llmstxt.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// CacheConfig defines the store used for generated artifacts
type CacheConfig struct {
	Type          string `yaml:"type" json:"type" jsonschema:"default=memory,enum=none,enum=memory,enum=redis,description=Cache store type"`
	MaxKeys       int    `yaml:"max_keys" json:"max_keys" jsonschema:"default=100,description=Maximum keys kept by memory store"`
	RedisAddr     string `yaml:"redis_addr" json:"redis_addr" jsonschema:"default=localhost:6379,description=Redis address"`
	RedisPassword string `yaml:"redis_password" json:"redis_password" jsonschema:"description=Redis password (can use environment variable)"`
	RedisDB       int    `yaml:"redis_db" json:"redis_db" jsonschema:"default=0,description=Redis database number"`
	Prefix        string `yaml:"prefix" json:"prefix" jsonschema:"default=llmstxt:,description=Redis key prefix"`
}

// ImportConfig holds feed import settings
type ImportConfig struct {
	Feeds       []string      `yaml:"feeds" json:"feeds" jsonschema:"description=RSS or Atom feeds imported as pages on startup"`
	Concurrency int           `yaml:"concurrency" json:"concurrency" jsonschema:"default=4,minimum=1,description=Maximum concurrent feed fetches"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:llmstxt.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for cache
	c.Cache.Type = strings.ToLower(strings.TrimSpace(c.Cache.Type))
	if c.Cache.Type == "" {
		c.Cache.Type = CacheMemory
	}
	if c.Cache.MaxKeys == 0 {
		c.Cache.MaxKeys = 100
	}
	if c.Cache.RedisAddr == "" {
		c.Cache.RedisAddr = "localhost:6379"
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "llmstxt:"
	}

	// set defaults for import
	if c.Import.Concurrency == 0 {
		c.Import.Concurrency = 4
	}
	if c.Import.Timeout == 0 {
		c.Import.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	switch cfg.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("cache.type must be one of none, memory or redis, got %q", cfg.Cache.Type)
	}
	if cfg.Cache.RedisDB < 0 {
		return fmt.Errorf("cache.redis_db must be non-negative")
	}

	if cfg.Import.Concurrency < 1 {
		return fmt.Errorf("import.concurrency must be at least 1")
	}

	if d := cfg.LLMs.CacheDurationMinutes; d != nil && *d <= 0 {
		return fmt.Errorf("llms.cache_duration must be positive, got %d", *d)
	}

	return nil
}

// Settings returns generation settings from built-in defaults and the file layer
func (c *Config) Settings() settings.Settings {
	return settings.Build(c.LLMs)
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSettingsLayer returns the file settings layer
func (c *Config) GetSettingsLayer() settings.Layer {
	return c.LLMs
}
