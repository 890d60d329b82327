package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON read-through layer over redis. A nil *Cache is
// valid and disables caching, so callers never branch on configuration.
type Cache struct {
	rdb *redis.Client
}

// Connect dials redis and verifies the connection with a ping.
func Connect(addr, user, password string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: user,
		Password: password,
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &Cache{rdb: rdb}, nil
}

// Get unmarshals the cached value into target. A miss, an error or a
// disabled cache all read as "not cached".
func (c *Cache) Get(ctx context.Context, key string, target any) bool {
	if c == nil {
		return false
	}

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("cache get failed key=%s err=%v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(data), target); err != nil {
		log.Printf("cache decode failed key=%s err=%v", key, err)
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("cache set failed key=%s err=%v", key, err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache delete failed keys=%v err=%v", keys, err)
	}
}
