package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisChannel maps the channel contract onto a Redis instance. Values
// carry no TTL; collections live until overwritten or removed.
type RedisChannel struct {
	rdb *redis.Client
}

// NewRedisChannel wraps an existing client. Use ConnectRedisChannel to
// dial with retries.
func NewRedisChannel(rdb *redis.Client) *RedisChannel {
	return &RedisChannel{rdb: rdb}
}

func ConnectRedisChannel(addr string, maxRetries int) (*RedisChannel, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		if err := rdb.Ping(context.Background()).Err(); err == nil {
			return NewRedisChannel(rdb), nil
		}
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis at %s after %d retries", addr, maxRetries)
}

func (r *RedisChannel) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (r *RedisChannel) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisChannel) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
