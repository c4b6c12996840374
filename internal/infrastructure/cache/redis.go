package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL parses a redis:// URL, connects and pings.
func NewRedisFromURL(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return rdb, nil
}

func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
