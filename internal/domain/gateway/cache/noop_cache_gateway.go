package cache

import (
	"context"

	"go-weather/internal/domain/model"
)

type noopCacheGateway struct{}

// NewNoopCacheGateway returns a gateway that never stores anything
func NewNoopCacheGateway() CacheGateway {
	return noopCacheGateway{}
}

func (noopCacheGateway) Get(context.Context, string, string, any) bool { return false }

func (noopCacheGateway) Set(context.Context, string, string, any) {}

func (noopCacheGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"message": "cache disabled"},
	}
}
