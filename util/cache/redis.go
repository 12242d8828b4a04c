package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/ribbonclub/ribbon_api/config"
)

// likeCountTTL bounds staleness of the cached "liked you" counters. The
// database stays authoritative; a cold key falls back to a count query.
const likeCountTTL = time.Hour

type Cache struct {
	Client *redis.Client
}

// New initializes the Redis client from config. Only Addr is mandatory.
func New(cfg *config.Config) *Cache {
	opts := &redis.Options{
		Addr: cfg.RedisAddr,
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	if cfg.RedisDB != 0 {
		opts.DB = cfg.RedisDB
	}
	return &Cache{Client: redis.NewClient(opts)}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// LikeCountKey generates the key for a user's incoming like count.
func (c *Cache) LikeCountKey(userID string) string {
	return fmt.Sprintf("likes:count:%s", userID)
}

// GetLikeCount returns the cached count for a user. The second return is
// false on a cache miss. TTL is refreshed on access.
func (c *Cache) GetLikeCount(ctx context.Context, userID string) (int64, bool, error) {
	key := c.LikeCountKey(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, errors.Wrap(err, "corrupt like count value")
	}

	_ = c.Client.Expire(ctx, key, likeCountTTL).Err()
	return n, true, nil
}

// SetLikeCount stores a freshly counted value with TTL.
func (c *Cache) SetLikeCount(ctx context.Context, userID string, count int64) error {
	return c.Client.Set(ctx, c.LikeCountKey(userID), count, likeCountTTL).Err()
}

// IncrLikeCount bumps an existing counter. A missing key is left absent
// so the next read repopulates from the database instead of starting
// from a bogus zero.
func (c *Cache) IncrLikeCount(ctx context.Context, userID string) error {
	key := c.LikeCountKey(userID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, likeCountTTL).Err()
}

func (c *Cache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
