package api

import (
	"context"

	"go-weather/internal/domain/model/external"
)

// ForecastGateway defines the interface for forecast provider calls
type ForecastGateway interface {
	// GetForecast fetches current, hourly and daily data for the coordinates
	GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error)
}
