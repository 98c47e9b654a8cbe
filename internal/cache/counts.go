// Package cache is a thin redis layer over slice job counts. Counts are
// advisory (the slice row already carries a seeded count), so every miss or
// redis error degrades to "not cached" and the caller falls through to the
// store.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Counts struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCounts parses redisURL and verifies connectivity. password overrides
// whatever the URL carries, so it can come from the keychain.
func NewCounts(ctx context.Context, redisURL, password string, ttl time.Duration) (*Counts, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if password != "" {
		opts.Password = password
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Counts{rdb: client, ttl: ttl}, nil
}

func key(slug string) string { return "jobslice:count:" + slug }

// Get returns the cached count for a slug. A nil receiver (cache disabled)
// is always a miss.
func (c *Counts) Get(ctx context.Context, slug string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	v, err := c.rdb.Get(ctx, key(slug)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Counts) Set(ctx context.Context, slug string, count int64) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, key(slug), strconv.FormatInt(count, 10), c.ttl).Err()
}

func (c *Counts) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
