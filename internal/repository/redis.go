package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the Cache interface with a shared Redis instance so
// multiple replicas can serve each other's results.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the given address. Entries expire after
// ttl; a zero ttl keeps them until the next flush.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(key string) (string, bool) {
	value, err := c.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *RedisCache) Set(key, value string) error {
	return c.client.Set(context.Background(), key, value, c.ttl).Err()
}

func (c *RedisCache) Flush() error {
	return c.client.FlushDB(context.Background()).Err()
}
