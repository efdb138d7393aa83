package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// badgeTTL is shorter than the clients' poll interval, so a cached count is
// at most one poll cycle stale.
const badgeTTL = 2 * time.Second

// BadgeCache is a short-TTL cache in front of the unread counters. Badge
// endpoints are polled by every open page, so the counters take the bulk of
// read traffic; errors here are ignored and fall through to the store.
type BadgeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBadgeCache(client *redis.Client) *BadgeCache {
	return &BadgeCache{client: client, ttl: badgeTTL}
}

func (c *BadgeCache) Get(ctx context.Context, key string) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *BadgeCache) Set(ctx context.Context, key string, count int64) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, strconv.FormatInt(count, 10), c.ttl).Err()
}

// Invalidate drops a cached count after a write that changes it.
func (c *BadgeCache) Invalidate(ctx context.Context, key string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, key).Err()
}
