// Package cache keeps finished build bundles for later retrieval by order ID.
// Redis is used when configured; an in-process expiring LRU serves every
// request otherwise and whenever Redis errors.
package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/ezhelptechnology/ezhelptechnology-saas/internal/logging"

	"github.com/go-redis/redis/v8"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when no bundle is cached for the key
var ErrCacheMiss = errors.New("cache: miss")

// Defaults
const (
	KeyPrefix       = "ezhelp:build:"
	DefaultTTL      = 24 * time.Hour
	MemoryCacheSize = 1024
)

// Backend names reported by BuildCache.Backend and to the recorder.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Recorder receives hit and miss events. internal/metrics implements it.
type Recorder interface {
	ObserveCache(backend string, hit bool)
}

// BuildCache stores serialized CompleteAssets bundles keyed by order ID.
type BuildCache struct {
	redis    redis.UniversalClient
	mem      *expirable.LRU[string, []byte]
	ttl      time.Duration
	recorder Recorder

	hits   atomic.Int64
	misses atomic.Int64
}

// New returns a BuildCache. client may be nil for a memory-only cache; a
// zero ttl selects DefaultTTL.
func New(client redis.UniversalClient, ttl time.Duration, recorder Recorder) *BuildCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &BuildCache{
		redis:    client,
		mem:      expirable.NewLRU[string, []byte](MemoryCacheSize, nil, ttl),
		ttl:      ttl,
		recorder: recorder,
	}
}

// Backend names the primary store
func (c *BuildCache) Backend() string {
	if c.redis != nil {
		return BackendRedis
	}
	return BackendMemory
}

// Put stores the bundle for orderID.
func (c *BuildCache) Put(ctx context.Context, orderID string, data []byte) error {
	key := KeyPrefix + orderID
	if c.redis != nil {
		err := c.redis.Set(ctx, key, data, c.ttl).Err()
		if err == nil {
			return nil
		}
		logging.L().Warn("redis set failed, caching in memory", zap.String("key", key), zap.Error(err))
	}

	c.mem.Add(key, data)
	return nil
}

// Get returns the bundle for orderID or ErrCacheMiss.
func (c *BuildCache) Get(ctx context.Context, orderID string) ([]byte, error) {
	key := KeyPrefix + orderID
	if c.redis != nil {
		val, err := c.redis.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			c.record(BackendRedis, true)
			return val, nil
		case !errors.Is(err, redis.Nil):
			logging.L().Warn("redis get failed, reading memory cache", zap.String("key", key), zap.Error(err))
		}
	}

	if val, ok := c.mem.Get(key); ok {
		c.record(BackendMemory, true)
		return val, nil
	}
	c.record(c.Backend(), false)
	return nil, ErrCacheMiss
}

// Health reports "redis", "memory" or "degraded" when Redis is configured
// but not answering.
func (c *BuildCache) Health(ctx context.Context) string {
	if c.redis == nil {
		return BackendMemory
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		return "degraded"
	}
	return BackendRedis
}

// Stats returns hit and miss counts since start
func (c *BuildCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Close releases the Redis connection
func (c *BuildCache) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}

func (c *BuildCache) record(backend string, hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	if c.recorder != nil {
		c.recorder.ObserveCache(backend, hit)
	}
}
