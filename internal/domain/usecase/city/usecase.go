package city

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// SearchCities returns geocoding matches for query, empty on short queries or lookup failures
	SearchCities(ctx context.Context, query string) []entity.CityMatch
}
