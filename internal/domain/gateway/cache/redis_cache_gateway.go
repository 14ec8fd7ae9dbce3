package cache

import (
	"context"
	"errors"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

type redisCacheGateway struct {
	caches  map[string]*redis.Cache
	health  *redis.HealthChecker
	timeout time.Duration
}

// NewRedisCacheGateway creates one JSON cache per name on top of client
func NewRedisCacheGateway(client *redis.Client, ttls map[string]time.Duration, timeout time.Duration) CacheGateway {
	caches := make(map[string]*redis.Cache, len(ttls))
	for name, ttl := range ttls {
		caches[name] = redis.NewCache(client, redis.NewCacheOptions().WithCacheName(name).WithTTL(ttl))
	}
	if timeout <= 0 {
		timeout = time.Second
	}

	return &redisCacheGateway{
		caches:  caches,
		health:  redis.NewHealthChecker(client, timeout),
		timeout: timeout,
	}
}

func (g *redisCacheGateway) Get(ctx context.Context, cacheName string, key string, dest any) bool {
	cache, ok := g.caches[cacheName]
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := cache.Get(ctx, key, dest); err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warn(msg.GetMessage("cache.get-fail", cache.Key(key), err), zap.String("cache", cacheName), zap.Error(err))
		}
		return false
	}

	log.Debug(msg.GetMessage("cache.hit", cache.Key(key)), zap.String("cache", cacheName))
	return true
}

func (g *redisCacheGateway) Set(ctx context.Context, cacheName string, key string, value any) {
	cache, ok := g.caches[cacheName]
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := cache.Set(ctx, key, value); err != nil {
		log.Warn(msg.GetMessage("cache.set-fail", cache.Key(key), err), zap.String("cache", cacheName), zap.Error(err))
	}
}

func (g *redisCacheGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	result := g.health.HealthCheck(ctx)

	status := model.StatusUnknown
	switch result.Status {
	case redis.StatusUp:
		status = model.StatusUp
	case redis.StatusDown:
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: result.Details}
}
