package weather

import (
	"context"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/forecast"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type weatherUseCase struct {
	gateway     api.ForecastGateway
	transformer *forecast.ResponseTransformer
	now         func() time.Time
}

func NewWeatherUseCase(gateway api.ForecastGateway, transformer *forecast.ResponseTransformer) UseCase {
	return newWeatherUseCase(gateway, transformer, time.Now)
}

func newWeatherUseCase(gateway api.ForecastGateway, transformer *forecast.ResponseTransformer, now func() time.Time) *weatherUseCase {
	if transformer == nil {
		transformer = forecast.NewResponseTransformer(forecast.DefaultHourlyLimit)
	}
	return &weatherUseCase{
		gateway:     gateway,
		transformer: transformer,
		now:         now,
	}
}

// FetchWeatherData validates the coordinates, fetches the forecast and returns both transformed views
func (uc *weatherUseCase) FetchWeatherData(ctx context.Context, latitude string, longitude string) (*model.WeatherResponse, error) {
	_, current, list, err := uc.fetch(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return &model.WeatherResponse{Current: current, Forecast: list}, nil
}

// GetWeekForecast returns one summary per forecast day built from the daily arrays
func (uc *weatherUseCase) GetWeekForecast(ctx context.Context, latitude string, longitude string) ([]entity.DaySummary, error) {
	raw, _, list, err := uc.fetch(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return forecast.AggregateByDay(forecast.NewStructuredDaily(list.DailyData, uc.transformer.Location(raw))), nil
}

// GetTodayForecast returns the upcoming hours of date after datetime
func (uc *weatherUseCase) GetTodayForecast(ctx context.Context, latitude string, longitude string, date string, datetime int64) ([]entity.TodayEntry, error) {
	raw, _, list, err := uc.fetch(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.transformer.Location(raw))
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	if datetime == 0 {
		datetime = now.Unix()
	}
	return forecast.TodayForecast(list, date, datetime), nil
}

// AggregateLegacyForecast groups a legacy hourly list into per-day summaries
func (uc *weatherUseCase) AggregateLegacyForecast(dto model.AggregateForecastDTO) []entity.DaySummary {
	return forecast.AggregateByDay(forecast.FlatHourly{
		Status:       dto.Cod,
		List:         dto.List,
		Descriptions: dto.Descriptions,
	})
}

// RefreshForecast fetches and validates the forecast for parsed coordinates
func (uc *weatherUseCase) RefreshForecast(ctx context.Context, latitude float64, longitude float64) error {
	if _, _, _, err := uc.fetchParsed(ctx, latitude, longitude); err != nil {
		return err
	}
	return nil
}

func (uc *weatherUseCase) fetch(ctx context.Context, latitude string, longitude string) (*external.ForecastResponse, *entity.CurrentWeather, *entity.ForecastList, error) {
	lat, lon, err := ParseCoordinates(latitude, longitude)
	if err != nil {
		return nil, nil, nil, err
	}
	return uc.fetchParsed(ctx, lat, lon)
}

func (uc *weatherUseCase) fetchParsed(ctx context.Context, lat float64, lon float64) (*external.ForecastResponse, *entity.CurrentWeather, *entity.ForecastList, error) {
	ctx, span := otel.Tracer("go-weather/weather").Start(ctx, "weather.fetch",
		trace.WithAttributes(attribute.Float64("weather.latitude", lat), attribute.Float64("weather.longitude", lon)))
	defer span.End()

	log.Debug(msg.GetMessage("weather.fetch", lat, lon))

	raw, err := uc.gateway.GetForecast(ctx, lat, lon)
	if err == nil {
		err = uc.transformer.Validate(raw)
	}

	var current *entity.CurrentWeather
	var list *entity.ForecastList
	if err == nil {
		current, err = uc.transformer.ToCurrentWeather(raw)
	}
	if err == nil {
		list, err = uc.transformer.ToForecastList(raw)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(msg.GetMessage("weather.fetch-fail", lat, lon, err),
			zap.Float64("latitude", lat),
			zap.Float64("longitude", lon),
			zap.Error(err),
		)
		return nil, nil, nil, err
	}

	span.SetAttributes(attribute.Int("weather.hourly_entries", len(list.List)))
	log.Debug(msg.GetMessage("weather.fetched", lat, lon, len(list.List)))
	return raw, current, list, nil
}
