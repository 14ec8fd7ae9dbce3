package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// FetchWeatherData validates the coordinates, fetches the forecast and returns both transformed views
	FetchWeatherData(ctx context.Context, latitude string, longitude string) (*model.WeatherResponse, error)

	// GetWeekForecast returns one summary per forecast day built from the daily arrays
	GetWeekForecast(ctx context.Context, latitude string, longitude string) ([]entity.DaySummary, error)

	// GetTodayForecast returns the upcoming hours of date after the epoch datetime.
	// An empty date or a zero datetime default to the location's current time.
	GetTodayForecast(ctx context.Context, latitude string, longitude string, date string, datetime int64) ([]entity.TodayEntry, error)

	// AggregateLegacyForecast groups a legacy hourly list into per-day summaries
	AggregateLegacyForecast(dto model.AggregateForecastDTO) []entity.DaySummary

	// RefreshForecast fetches the forecast for already parsed coordinates, used to warm the cache
	RefreshForecast(ctx context.Context, latitude float64, longitude float64) error
}
