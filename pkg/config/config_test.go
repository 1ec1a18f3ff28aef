package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_REDIS_PASSWD", "secret")
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://x.io
database:
  dsn: "file:test.db"
cache:
  type: Redis
  redis_addr: "redis:6379"
  redis_password: ${TEST_REDIS_PASSWD}
  redis_db: 2
import:
  feeds:
    - https://example.com/feed.xml
  concurrency: 2
llms:
  enabled: false
  cache: true
  cache_duration: 15
  exclude_pages: [team, legal]
  sitemap_homepage: false
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://x.io", cfg.Server.BaseURL)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, CacheRedis, cfg.Cache.Type)
		assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
		assert.Equal(t, "secret", cfg.Cache.RedisPassword)
		assert.Equal(t, 2, cfg.Cache.RedisDB)
		assert.Equal(t, []string{"https://example.com/feed.xml"}, cfg.Import.Feeds)
		assert.Equal(t, 2, cfg.Import.Concurrency)

		s := cfg.Settings()
		assert.False(t, s.Enabled)
		assert.True(t, s.SitemapEnabled)
		assert.True(t, s.CacheEnabled)
		assert.Equal(t, 15, s.CacheDurationMinutes)
		assert.Equal(t, []string{"team", "legal"}, s.ExcludePages)
		assert.Equal(t, []string{"error"}, s.ExcludeTemplates)
		assert.False(t, s.SitemapHomepage)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  base_url: https://x.io\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, CacheMemory, cfg.Cache.Type)
		assert.Equal(t, 100, cfg.Cache.MaxKeys)
		assert.Equal(t, "llmstxt:", cfg.Cache.Prefix)
		assert.Equal(t, 4, cfg.Import.Concurrency)
		assert.Equal(t, 30*time.Second, cfg.Import.Timeout)
		assert.Equal(t, cfg.Settings(), Default().Settings())
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{name: "short timeout", yaml: "server:\n  timeout: 100ms\n", errMsg: "server timeout"},
		{name: "unknown cache type", yaml: "cache:\n  type: memcached\n", errMsg: "cache.type"},
		{name: "negative redis db", yaml: "cache:\n  redis_db: -1\n", errMsg: "cache.redis_db"},
		{name: "negative concurrency", yaml: "import:\n  concurrency: -2\n", errMsg: "import.concurrency"},
		{name: "zero cache duration", yaml: "llms:\n  cache_duration: 0\n", errMsg: "llms.cache_duration"},
		{name: "negative cache duration", yaml: "llms:\n  cache_duration: -5\n", errMsg: "llms.cache_duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, validate(cfg))
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, CacheMemory, cfg.Cache.Type)
	assert.True(t, cfg.Settings().Enabled)
}
