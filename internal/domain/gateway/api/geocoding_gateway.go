package api

import (
	"context"

	"go-weather/internal/domain/model/external"
)

// GeocodingGateway defines the interface for place name lookups
type GeocodingGateway interface {
	// SearchCities returns up to count places matching name, in the given language
	SearchCities(ctx context.Context, name string, count int, language string) ([]external.GeocodingResult, error)
}
