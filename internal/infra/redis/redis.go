package redis

import (
	"context"
	"time"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// NewClient builds the shared Redis client from the app.redis properties
func NewClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDialTimeout(resource.GetDurationOrDefault("app.redis.dial-timeout", 2*time.Second)).
		WithReadTimeout(resource.GetDurationOrDefault("app.redis.read-timeout", time.Second)).
		WithDefaultCacheTTL(defaultTTL()).
		WithCacheTTL(cache.GeocodingCache, CacheTTL(cache.GeocodingCache)).
		WithCacheTTL(cache.ForecastCache, CacheTTL(cache.ForecastCache))

	return redis.NewClient(config)
}

// CacheTTL reads app.cache.ttl.<name>, falling back to app.cache.ttl.default
func CacheTTL(cacheName string) time.Duration {
	return resource.GetDurationOrDefault("app.cache.ttl."+cacheName, defaultTTL())
}

func defaultTTL() time.Duration {
	return resource.GetDurationOrDefault("app.cache.ttl.default", 10*time.Minute)
}

// Locker takes short lived run locks with SET NX so only one replica runs a job
type Locker struct {
	client *redis.Client
	owner  string
}

func NewLocker(client *redis.Client, owner string) *Locker {
	return &Locker{client: client, owner: owner}
}

func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, lockKey(key), l.owner, ttl)
}

// Unlock releases the lock if this owner still holds it
func (l *Locker) Unlock(ctx context.Context, key string) error {
	_, err := l.client.DeleteIfValue(ctx, lockKey(key), l.owner)
	return err
}

func lockKey(key string) string {
	return "lock::" + key
}
