package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/llmstxt/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc"
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))

	// schema init is idempotent
	require.NoError(t, initSchema(context.Background(), repos.DB))

	site, err := repos.Site.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Site{}, site)

	site, err = repos.Source("https://fallback.io").Site(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.io", site.URL, "base url used for empty site url")
}

func TestPageRepository_CRUD(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	modified := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	created, err := repos.Page.Create(ctx, domain.Page{ID: "about", URI: "about", Title: "About",
		URL: "https://x.io/about", Listed: true, Modified: modified})
	require.NoError(t, err)
	assert.Equal(t, "default", created.Template)
	assert.Equal(t, 1, created.Position)
	assert.True(t, created.Modified.Equal(modified))

	_, err = repos.Page.Create(ctx, domain.Page{ID: "about", Title: "Dup", URL: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	t.Run("get", func(t *testing.T) {
		p, err := repos.Page.Get(ctx, "about")
		require.NoError(t, err)
		assert.Equal(t, "About", p.Title)

		_, err = repos.Page.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		p, err := repos.Page.Get(ctx, "about")
		require.NoError(t, err)
		p.Title = "About us"
		p.Listed = false
		updated, err := repos.Page.Update(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "About us", updated.Title)
		assert.False(t, updated.Listed)

		_, err = repos.Page.Update(ctx, domain.Page{ID: "missing", Title: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Page.Delete(ctx, "about"))
		assert.ErrorIs(t, repos.Page.Delete(ctx, "about"), ErrNotFound)
	})
}

func TestPageRepository_ListedPages(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	pages := []domain.Page{
		{ID: "blog", URI: "blog", Title: "Blog", URL: "https://x.io/blog", Listed: true, Position: 3},
		{ID: "draft", URI: "draft", Title: "Draft", URL: "https://x.io/draft", Listed: false, Position: 1},
		{ID: "about", URI: "about", Title: "About", URL: "https://x.io/about", Listed: true, Position: 2},
		{ID: "contact", URI: "contact", Title: "Contact", URL: "https://x.io/contact", Listed: true},
	}
	for _, p := range pages {
		_, err := repos.Page.Create(ctx, p)
		require.NoError(t, err)
	}

	listed, err := repos.Source("").ListedPages(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(listed))
	for _, p := range listed {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"about", "blog", "contact"}, ids)

	all, err := repos.Page.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "draft", all[0].ID)

	total, listedCount, err := repos.Page.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 3, listedCount)
}

func TestPageRepository_Upsert(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Page.Create(ctx, domain.Page{ID: "first", Title: "First", URL: "u1", Listed: true})
	require.NoError(t, err)
	created, err := repos.Page.Upsert(ctx, domain.Page{ID: "blog", Title: "Blog", URL: "u2", Listed: true})
	require.NoError(t, err)
	assert.Equal(t, 2, created.Position)

	updated, err := repos.Page.Upsert(ctx, domain.Page{ID: "blog", Title: "Blog v2", URL: "u2", Listed: true})
	require.NoError(t, err)
	assert.Equal(t, "Blog v2", updated.Title)
	assert.Equal(t, 2, updated.Position, "position kept")

	total, _, err := repos.Page.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSiteRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	site := domain.Site{Title: "Kozmoz", URL: "https://x.io", Description: "d", MetaDescription: "m", LLMsDescription: "l"}
	require.NoError(t, repos.Site.Update(ctx, site))

	got, err := repos.Source("https://fallback.io").Site(ctx)
	require.NoError(t, err)
	assert.Equal(t, site, got)

	site.Title = "Renamed"
	require.NoError(t, repos.Site.Update(ctx, site))
	got, err = repos.Site.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	val, err := repos.Setting.GetSetting(ctx, "enabled")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repos.Setting.SetSetting(ctx, "enabled", "false"))
	require.NoError(t, repos.Setting.SetSetting(ctx, "enabled", "true"))
	val, err = repos.Setting.GetSetting(ctx, "enabled")
	require.NoError(t, err)
	assert.Equal(t, "true", val)

	require.NoError(t, repos.Setting.SetAll(ctx, map[string]string{"cacheEnabled": "true", "excludePages": "team"}))
	all, err := repos.Setting.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"enabled": "true", "cacheEnabled": "true", "excludePages": "team"}, all)

	require.NoError(t, repos.Setting.Delete(ctx, "enabled"))
	all, err = repos.Setting.GetAll(ctx)
	require.NoError(t, err)
	assert.NotContains(t, all, "enabled")
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLockError(errors.New("database table is locked")))
	assert.False(t, isLockError(errors.New("UNIQUE constraint failed")))
}

func TestWithRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return errors.New("constraint failed")
		})
		require.EqualError(t, err, "constraint failed")
		assert.Equal(t, 1, calls)
	})
}
