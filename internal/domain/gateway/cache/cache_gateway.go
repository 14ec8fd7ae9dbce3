package cache

import (
	"context"

	"go-weather/internal/domain/model"
)

const (
	GeocodingCache = "geocoding"
	ForecastCache  = "forecast"
)

// CacheGateway stores serialized provider responses by cache name and key
type CacheGateway interface {
	// Get decodes the cached value into dest, reporting whether it was found
	Get(ctx context.Context, cacheName string, key string, dest any) bool

	// Set stores value, failures are logged and ignored
	Set(ctx context.Context, cacheName string, key string, value any)

	// Health reports the cache component status
	Health(ctx context.Context) model.ComponentHealthStatus
}
