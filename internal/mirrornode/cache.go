package mirrornode

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores serialized lookup results under string keys. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// MemoryCache is a process-local Cache for single-process agents.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// Get returns the cached value when present and unexpired. Expired entries
// are dropped so long-lived sessions do not accumulate dead keys.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if current, still := c.entries[key]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores a value with the given lifetime.
func (c *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// RedisCache shares lookup results across an agent fleet.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps a redis client; prefix namespaces the keys.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = "mirrornode:"
	}
	return &RedisCache{client: client, prefix: prefix}
}

// Get returns the cached value when present.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores a value with the given lifetime.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// tokenInfoTTL bounds staleness of cached token metadata. Decimals never
// change after creation, but keys and supply can.
const tokenInfoTTL = 5 * time.Minute

// CachedService decorates a Service with caching for the hot lookups
// (token info drives every fungible amount conversion).
type CachedService struct {
	Service
	cache Cache
}

// NewCachedService wraps source so TokenInfo results are served from cache.
func NewCachedService(source Service, cache Cache) *CachedService {
	return &CachedService{Service: source, cache: cache}
}

// TokenInfo serves token metadata from the cache when possible. Cache
// failures fall through to the underlying service.
func (s *CachedService) TokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error) {
	key := "token:" + tokenID
	if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var info TokenInfo
		if json.Unmarshal([]byte(cached), &info) == nil {
			return &info, nil
		}
	}
	info, err := s.Service.TokenInfo(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(info); err == nil {
		_ = s.cache.Set(ctx, key, string(encoded), tokenInfoTTL)
	}
	return info, nil
}
