package api

import (
	"context"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/msg"

	"golang.org/x/time/rate"
)

type rateLimitedGeocodingGateway struct {
	next    GeocodingGateway
	limiter *rate.Limiter
}

// NewRateLimitedGeocodingGateway waits on limiter before every lookup
func NewRateLimitedGeocodingGateway(next GeocodingGateway, limiter *rate.Limiter) GeocodingGateway {
	if limiter == nil {
		return next
	}
	return &rateLimitedGeocodingGateway{next: next, limiter: limiter}
}

func (g *rateLimitedGeocodingGateway) SearchCities(ctx context.Context, name string, count int, language string) ([]external.GeocodingResult, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, model.NewTransportError(msg.GetMessage("gateway.rate-limit-wait", err), err)
	}
	return g.next.SearchCities(ctx, name, count, language)
}

type rateLimitedForecastGateway struct {
	next    ForecastGateway
	limiter *rate.Limiter
}

// NewRateLimitedForecastGateway waits on limiter before every forecast call
func NewRateLimitedForecastGateway(next ForecastGateway, limiter *rate.Limiter) ForecastGateway {
	if limiter == nil {
		return next
	}
	return &rateLimitedForecastGateway{next: next, limiter: limiter}
}

func (g *rateLimitedForecastGateway) GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, model.NewTransportError(msg.GetMessage("gateway.rate-limit-wait", err), err)
	}
	return g.next.GetForecast(ctx, latitude, longitude)
}

// NewLimiter builds a limiter from requests per second and burst, nil when rps is not positive
func NewLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
