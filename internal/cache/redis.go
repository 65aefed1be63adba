package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Pool settings applied on top of whatever the URL specifies.
const (
	redisPoolSize     = 20
	redisMinIdleConns = 2
	redisDialTimeout  = 5 * time.Second
	redisIOTimeout    = 3 * time.Second
	redisIdleTimeout  = 5 * time.Minute
)

// NewRedisClient parses a redis:// or rediss:// URL and verifies the server
// answers PING within five seconds.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	opts.PoolSize = redisPoolSize
	opts.MinIdleConns = redisMinIdleConns
	opts.DialTimeout = redisDialTimeout
	opts.ReadTimeout = redisIOTimeout
	opts.WriteTimeout = redisIOTimeout
	opts.IdleTimeout = redisIdleTimeout

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
