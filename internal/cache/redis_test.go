package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airportservice/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestListKey(t *testing.T) {
	assert.Equal(t, "cache:list:airports", listKey("airports"))
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:0"}, time.Minute)
	defer c.Close()
	assert.NotNil(t, c)
	assert.Equal(t, time.Minute, c.listTTL)
}

func TestGetList_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	c := NewRedisCacheWithClient(client, time.Minute)
	defer c.Close()

	var dst []int
	hit, err := c.GetList(context.Background(), "airports", &dst)

	assert.Error(t, err)
	assert.False(t, hit)
}
