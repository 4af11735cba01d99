// README: Flight price cache backed by Redis, with an in-memory fallback.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "flights:route:%s"
	// cacheTTL keeps quoted prices around long enough to answer repeat
	// questions in one planning session without going stale for weeks.
	cacheTTL = 7 * 24 * time.Hour
)

// Cache stores result sets per route/date key. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]Flight, bool)
	Set(ctx context.Context, key string, flights []Flight)
}

// RedisCache serializes offer lists as JSON under a route key.
type RedisCache struct {
	redis *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{redis: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]Flight, bool) {
	val, err := c.redis.Get(ctx, fmt.Sprintf(cacheKeyPrefix, key)).Result()
	if err != nil {
		return nil, false
	}
	var out []Flight
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *RedisCache) Set(ctx context.Context, key string, flights []Flight) {
	data, err := json.Marshal(flights)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, fmt.Sprintf(cacheKeyPrefix, key), data, cacheTTL).Err()
}

// MemoryCache is the fallback when no Redis address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]Flight
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]Flight)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]Flight, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out, ok := c.entries[key]
	return out, ok
}

func (c *MemoryCache) Set(_ context.Context, key string, flights []Flight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = flights
}
