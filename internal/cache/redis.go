package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airportservice/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores rendered list payloads per resource.
type RedisCache struct {
	client  *redis.Client
	listTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listTTL: listTTL,
	}
}

func NewRedisCacheWithClient(client *redis.Client, listTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, listTTL: listTTL}
}

// GetList decodes the cached list into dst. It reports false on a miss.
func (c *RedisCache) GetList(ctx context.Context, resource string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, listKey(resource)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetList(ctx context.Context, resource string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(resource), payload, c.listTTL).Err()
}

// InvalidateLists drops every cached list. Cascading deletes and crew flight sets
// change lists of other resources, so a write invalidates all of them.
func (c *RedisCache) InvalidateLists(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, listKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

const listKeyPrefix = "cache:list:"

func listKey(resource string) string {
	return listKeyPrefix + resource
}
