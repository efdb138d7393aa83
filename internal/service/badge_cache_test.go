package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestBadgeCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewBadgeCache(client)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "badge:msg:u1")
	require.False(t, ok)

	cache.Set(ctx, "badge:msg:u1", 7)
	n, ok := cache.Get(ctx, "badge:msg:u1")
	require.True(t, ok)
	require.EqualValues(t, 7, n)

	cache.Invalidate(ctx, "badge:msg:u1")
	_, ok = cache.Get(ctx, "badge:msg:u1")
	require.False(t, ok)

	// entries age out on their own
	cache.Set(ctx, "badge:msg:u1", 3)
	mr.FastForward(3 * time.Second)
	_, ok = cache.Get(ctx, "badge:msg:u1")
	require.False(t, ok)
}

func TestBadgeCacheNilSafe(t *testing.T) {
	var cache *BadgeCache
	ctx := context.Background()

	// all operations are no-ops without a backing client
	_, ok := cache.Get(ctx, "k")
	require.False(t, ok)
	cache.Set(ctx, "k", 1)
	cache.Invalidate(ctx, "k")
}
