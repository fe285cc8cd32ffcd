package storage

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/storefront/internal/pkg/errs"
)

// RedisAdapter persists store snapshots as plain string values, one key per
// store, with no TTL.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrapf(err, "redis get %s", key)
	}
	return val, true, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value string) error {
	return errs.Wrapf(r.client.Set(ctx, key, value, 0).Err(), "redis set %s", key)
}

func (r *RedisAdapter) Remove(ctx context.Context, key string) error {
	return errs.Wrapf(r.client.Del(ctx, key).Err(), "redis del %s", key)
}
