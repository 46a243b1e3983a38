package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type implRedis struct {
	client *goredis.Client
}

func (r *implRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *implRedis) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *implRedis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *implRedis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *implRedis) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

func (r *implRedis) Close() error {
	return r.client.Close()
}

func (r *implRedis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *implRedis) GetClient() *goredis.Client {
	return r.client
}
