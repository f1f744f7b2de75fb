package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewCache(rdb, time.Minute)
}

func TestCache_SetGet(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", map[string]int{"a": 1}))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	var got map[string]int
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, got["a"])

	found, err = c.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_DeletePrefix(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	for _, k := range []string{"tx:1:page:1", "tx:1:page:2", "tx:10:page:1"} {
		require.NoError(t, c.Set(ctx, k, 1))
	}
	require.NoError(t, c.DeletePrefix(ctx, "tx:1:"))
	assert.False(t, mr.Exists("tx:1:page:1"))
	assert.False(t, mr.Exists("tx:1:page:2"))
	assert.True(t, mr.Exists("tx:10:page:1"))
}

func TestCache_SetAtGeneration(t *testing.T) {
	mr, c := setupCache(t)
	ctx := context.Background()

	gen, err := c.Generation(ctx, "gen")
	require.NoError(t, err)
	assert.Zero(t, gen)

	stored, err := c.SetAtGeneration(ctx, "gen", gen, "k", 1)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.True(t, mr.Exists("k"))

	require.NoError(t, c.Bump(ctx, "gen"))
	stored, err = c.SetAtGeneration(ctx, "gen", gen, "k", 2)
	require.NoError(t, err)
	assert.False(t, stored)
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	gen, err = c.Generation(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestCache_NilIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var v int
	found, err := c.Get(ctx, "k", &v)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(ctx, "k", 1))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.DeletePrefix(ctx, "k"))
	assert.NoError(t, c.Bump(ctx, "gen"))
	stored, err := c.SetAtGeneration(ctx, "gen", 0, "k", 1)
	assert.NoError(t, err)
	assert.False(t, stored)
}
