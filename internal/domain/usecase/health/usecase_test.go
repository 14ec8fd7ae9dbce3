package health

import (
	"context"
	"testing"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model"
)

type stubCache struct {
	cache.CacheGateway
	status model.HealthStatus
}

func (s stubCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		cache  cache.CacheGateway
		status model.HealthStatus
	}{
		{"cache disabled", cache.NewNoopCacheGateway(), model.StatusUp},
		{"cache up", stubCache{status: model.StatusUp}, model.StatusUp},
		{"cache down", stubCache{status: model.StatusDown}, model.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHealthUseCase(tt.cache).CheckHealth(context.Background())
			if got.Status != tt.status {
				t.Errorf("expected %s, got %s", tt.status, got.Status)
			}
		})
	}
}
