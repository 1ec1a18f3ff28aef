package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	r, err := NewRedis(ctx, RedisOpts{Addr: mr.Addr(), Prefix: "llmstxt:"})
	require.NoError(t, err)
	defer r.Close()

	t.Run("miss", func(t *testing.T) {
		_, found, err := r.Get(ctx, "llms")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set get with ttl", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "llms", "body", time.Minute))
		assert.True(t, mr.Exists("llmstxt:llms"))
		assert.Equal(t, time.Minute, mr.TTL("llmstxt:llms"))

		v, found, err := r.Get(ctx, "llms")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "body", v)

		mr.FastForward(2 * time.Minute)
		_, found, err = r.Get(ctx, "llms")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("flush keeps foreign keys", func(t *testing.T) {
		require.NoError(t, mr.Set("other", "keep"))
		require.NoError(t, r.Set(ctx, "llms", "body", time.Minute))
		require.NoError(t, r.Set(ctx, "sitemap", "xml", time.Minute))

		require.NoError(t, r.Flush(ctx))
		assert.False(t, mr.Exists("llmstxt:llms"))
		assert.False(t, mr.Exists("llmstxt:sitemap"))
		assert.True(t, mr.Exists("other"))
	})

	t.Run("flush with nothing cached", func(t *testing.T) {
		assert.NoError(t, r.Flush(ctx))
	})
}

func TestRedis_FlushWithoutPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	r, err := NewRedis(ctx, RedisOpts{Addr: mr.Addr()})
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Set(ctx, "llms", "body", time.Minute))
	require.NoError(t, r.Flush(ctx))
	assert.False(t, mr.Exists("llms"))
}

func TestRedis_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(context.Background(), RedisOpts{Addr: addr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis")
}
