package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/green-footprint/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	// IncrWithTTL increments key, starting its expiry window on first use, and
	// returns the new count together with the remaining time to live.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, time.Duration, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, time.Duration, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, 0, nil
	}

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	remaining := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return incr.Val(), remaining.Val(), nil
}
