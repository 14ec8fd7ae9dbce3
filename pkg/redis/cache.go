package redis

import (
	"context"
	"encoding/json"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is the time to live for the cached value
	TTL time.Duration
	// CacheName prefixes keys and selects a TTL from the client configuration
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{TTL: 10 * time.Minute}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// WithCacheName sets the cache name for key prefix and TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache stores JSON values under CacheName::key
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// TTL returns the cache TTL, checking client configuration first
func (c *Cache) TTL() time.Duration {
	if c.opts.CacheName != "" && c.client != nil && c.client.config != nil {
		if clientTTL, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return clientTTL
		}
	}
	if c.opts.TTL > 0 {
		return c.opts.TTL
	}
	if c.client != nil && c.client.config != nil {
		return c.client.config.DefaultCacheTTL
	}
	return 0
}

// Key constructs the full cache key
func (c *Cache) Key(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get retrieves a value from cache and decodes it into dest, ErrCacheMiss when absent
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.GetBytes(ctx, c.Key(key))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set encodes value as JSON and stores it with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.Key(key), data, c.TTL())
}
