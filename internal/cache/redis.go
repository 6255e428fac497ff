package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"dotdo/internal/config"
	"dotdo/pkg/logger"
)

// List kinds cached per user.
const (
	KindTodos = "todos"
	KindMemos = "memos"
)

// Cache holds per-user raw JSON list payloads in Redis so the hot REST
// list reads skip the database. A nil Cache is valid and misses on
// every read, so the app runs without Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis, or returns nil (cache disabled) when the
// connection fails.
func New(ctx context.Context, cfg *config.Config) *Cache {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error(ctx, "Invalid REDIS_URL", "error", err, "url", cfg.RedisURL)
		return nil
	}
	opts.PoolSize = cfg.RedisPoolSize
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn(ctx, "Redis unavailable, cache disabled", "error", err)
		return nil
	}
	logger.Info(ctx, "Redis client initialized", "pool_size", cfg.RedisPoolSize)
	return &Cache{client: client, ttl: cfg.CacheTTL}
}

func listKey(kind, userID string) string {
	return kind + ":user:" + userID
}

// GetList reads a user's cached list payload. Returns (nil, false) on
// miss or error.
func (c *Cache) GetList(ctx context.Context, kind, userID string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.client.Get(ctx, listKey(kind, userID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Debug(ctx, "Redis get failed", "error", err, "kind", kind)
		return nil, false
	}
	return b, true
}

// SetListAsync stores a user's list payload in the background so the
// response is not held up by the cache write.
func (c *Cache) SetListAsync(kind, userID string, payload []byte) {
	if c == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := c.client.Set(ctx, listKey(kind, userID), payload, c.ttl).Err(); err != nil {
			logger.Debug(ctx, "Redis set failed", "error", err, "kind", kind)
		}
	}()
}

// InvalidateList drops a user's cached list so the next read goes to
// the database.
func (c *Cache) InvalidateList(ctx context.Context, kind, userID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, listKey(kind, userID)).Err(); err != nil {
		logger.Debug(ctx, "Redis invalidate failed", "error", err, "kind", kind)
	}
}

// Ping reports whether Redis is reachable. Used by the readiness probe.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return redis.ErrClosed
	}
	return c.client.Ping(ctx).Err()
}
