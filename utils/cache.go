// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"wanderlust/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects to the Redis database backing the search cache and
// verifies it with a ping.
func NewCacheClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache) at %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}
