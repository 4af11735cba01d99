// README: Hotel price cache backed by Redis, with an in-memory fallback.
package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "hotels:stay:%s"
	cacheTTL       = 7 * 24 * time.Hour
)

// Cache stores result sets per stay key. Implementations must be safe
// for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]Hotel, bool)
	Set(ctx context.Context, key string, hotels []Hotel)
}

type RedisCache struct {
	redis *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{redis: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Hotel, bool) {
	val, err := c.redis.Get(ctx, fmt.Sprintf(cacheKeyPrefix, key)).Result()
	if err != nil {
		return nil, false
	}
	var out []Hotel
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *RedisCache) Set(ctx context.Context, key string, hotels []Hotel) {
	data, err := json.Marshal(hotels)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, fmt.Sprintf(cacheKeyPrefix, key), data, cacheTTL).Err()
}

type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]Hotel
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]Hotel)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]Hotel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out, ok := c.entries[key]
	return out, ok
}

func (c *MemoryCache) Set(_ context.Context, key string, hotels []Hotel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = hotels
}
