package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	return &Cache{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func TestLikeCountMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.GetLikeCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLikeCountSetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetLikeCount(ctx, "user-1", 7))

	n, ok, err := c.GetLikeCount(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
}

func TestIncrLikeCount(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	// incrementing a cold key is a no-op, the next read repopulates
	require.NoError(t, c.IncrLikeCount(ctx, "user-1"))
	_, ok, err := c.GetLikeCount(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetLikeCount(ctx, "user-1", 2))
	require.NoError(t, c.IncrLikeCount(ctx, "user-1"))

	n, ok, err := c.GetLikeCount(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)
}
