package database

import (
	"context"
	"time"

	"movie-reservation/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the Redis client used by the availability cache.
// Returns nil when no URL is configured; the cache layer treats a nil
// client as a permanent miss, so the service keeps working without Redis.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	if config.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
