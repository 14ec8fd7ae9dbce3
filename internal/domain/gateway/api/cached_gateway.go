package api

import (
	"context"
	"strconv"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model/external"
)

type cachedGeocodingGateway struct {
	next  GeocodingGateway
	cache cache.CacheGateway
}

// NewCachedGeocodingGateway serves repeated lookups from cache under "<language>:<name>"
func NewCachedGeocodingGateway(next GeocodingGateway, cacheGateway cache.CacheGateway) GeocodingGateway {
	return &cachedGeocodingGateway{next: next, cache: cacheGateway}
}

func (g *cachedGeocodingGateway) SearchCities(ctx context.Context, name string, count int, language string) ([]external.GeocodingResult, error) {
	key := language + ":" + name

	var cached []external.GeocodingResult
	if g.cache.Get(ctx, cache.GeocodingCache, key, &cached) {
		return cached, nil
	}

	results, err := g.next.SearchCities(ctx, name, count, language)
	if err != nil {
		return nil, err
	}
	g.cache.Set(ctx, cache.GeocodingCache, key, results)
	return results, nil
}

type cachedForecastGateway struct {
	next  ForecastGateway
	cache cache.CacheGateway
}

// NewCachedForecastGateway serves repeated forecasts from cache under "<lat>,<lon>"
func NewCachedForecastGateway(next ForecastGateway, cacheGateway cache.CacheGateway) ForecastGateway {
	return &cachedForecastGateway{next: next, cache: cacheGateway}
}

func (g *cachedForecastGateway) GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	key := ForecastCacheKey(latitude, longitude)

	var cached external.ForecastResponse
	if g.cache.Get(ctx, cache.ForecastCache, key, &cached) {
		return &cached, nil
	}

	response, err := g.next.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	if response.Current != nil && response.Hourly != nil && response.Daily != nil {
		g.cache.Set(ctx, cache.ForecastCache, key, response)
	}
	return response, nil
}

// ForecastCacheKey formats coordinates with the shortest exact representation
func ForecastCacheKey(latitude float64, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)
}
