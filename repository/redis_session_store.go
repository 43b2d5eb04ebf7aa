package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore backs the session store with Redis, relying on Redis
// key expiry for the TTL contract.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to the Redis instance at addr.
func NewRedisSessionStore(addr string) *RedisSessionStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisSessionStore{client: rdb}
}

func (s *RedisSessionStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close releases the underlying connection pool.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
