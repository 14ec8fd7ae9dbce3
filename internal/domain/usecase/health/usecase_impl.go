package health

import (
	"context"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway cache.CacheGateway
}

func NewHealthUseCase(cacheGateway cache.CacheGateway) UseCase {
	return &healthUseCase{
		cacheGateway: cacheGateway,
	}
}

// CheckHealth is DOWN only when an enabled cache cannot be reached
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheGateway.Health(ctx)

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Cache:  cacheHealth,
	}
}
