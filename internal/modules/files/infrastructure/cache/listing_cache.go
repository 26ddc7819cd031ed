package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"docshare/internal/modules/files/domain"
)

// DefaultTTL keeps listings fresh enough that a stale entry is only
// ever one invalidation behind
const DefaultTTL = 60 * time.Second

// RedisListingCache caches one JSON-encoded listing per owner
type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a redis-backed listing cache
func NewListingCache(client *redis.Client, ttl time.Duration) *RedisListingCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisListingCache{client: client, ttl: ttl}
}

func listingKey(username string) string {
	return "files:" + username
}

// Get implements domain.ListingCache. Any redis or decode failure is a
// cache miss.
func (c *RedisListingCache) Get(ctx context.Context, username string) ([]domain.File, bool) {
	val, err := c.client.Get(ctx, listingKey(username)).Result()
	if err != nil {
		return nil, false
	}

	var files []domain.File
	if err := json.Unmarshal([]byte(val), &files); err != nil {
		log.Printf("[ListingCache.Get] corrupt cache entry for %s: %v", username, err)
		c.client.Del(ctx, listingKey(username))
		return nil, false
	}
	return files, true
}

// Set implements domain.ListingCache
func (c *RedisListingCache) Set(ctx context.Context, username string, files []domain.File) {
	b, err := json.Marshal(files)
	if err != nil {
		log.Printf("[ListingCache.Set] marshal failed for %s: %v", username, err)
		return
	}
	if err := c.client.Set(ctx, listingKey(username), b, c.ttl).Err(); err != nil {
		log.Printf("[ListingCache.Set] redis set failed for %s: %v", username, err)
	}
}

// Invalidate implements domain.ListingCache
func (c *RedisListingCache) Invalidate(ctx context.Context, username string) {
	if err := c.client.Del(ctx, listingKey(username)).Err(); err != nil {
		log.Printf("[ListingCache.Invalidate] redis del failed for %s: %v", username, err)
	}
}

// NoopListingCache is used when no redis instance is configured
type NoopListingCache struct{}

func (NoopListingCache) Get(ctx context.Context, username string) ([]domain.File, bool) {
	return nil, false
}
func (NoopListingCache) Set(ctx context.Context, username string, files []domain.File) {}
func (NoopListingCache) Invalidate(ctx context.Context, username string)              {}
