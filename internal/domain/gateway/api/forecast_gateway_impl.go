package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"strconv"
	"strings"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

var (
	currentFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"cloud_cover",
		"pressure_msl",
		"wind_speed_10m",
		"wind_direction_10m",
		"wind_gusts_10m",
	}
	hourlyFields = []string{
		"temperature_2m",
		"weather_code",
		"relative_humidity_2m",
		"wind_speed_10m",
	}
	dailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"apparent_temperature_max",
		"apparent_temperature_min",
		"sunrise",
		"sunset",
		"wind_speed_10m_max",
		"wind_direction_10m_dominant",
	}
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient   *http.Client
	forecastDays int
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, forecastDays int, clientOptions http.ClientOptions) ForecastGateway {
	if forecastDays <= 0 {
		forecastDays = 7
	}
	return &forecastGatewayImpl{
		httpClient:   http.NewHttpClient(baseUrl, clientOptions),
		forecastDays: forecastDays,
	}
}

// GetForecast gets current conditions plus hourly and daily series
func (g *forecastGatewayImpl) GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithHeaders(acceptJSON).
		WithPath("/forecast").
		WithQueryParams(map[string]string{
			"latitude":      strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude":     strconv.FormatFloat(longitude, 'f', -1, 64),
			"current":       strings.Join(currentFields, ","),
			"hourly":        strings.Join(hourlyFields, ","),
			"daily":         strings.Join(dailyFields, ","),
			"timezone":      "auto",
			"forecast_days": strconv.Itoa(g.forecastDays),
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return nil, statusError(statusErr)
	}
	if status != 0 {
		return nil, model.NewFormatError(err.Error())
	}
	return nil, model.NewTransportError(msg.GetMessage("weather.api.network"), err)
}

// statusError maps a provider status to the message surfaced to callers
func statusError(err *http.StatusError) *model.WeatherError {
	var message string
	switch err.StatusCode {
	case nethttp.StatusBadRequest:
		message = msg.GetMessage("weather.api.invalid-coordinates", err.Body)
	case nethttp.StatusTooManyRequests:
		message = msg.GetMessage("weather.api.rate-limit")
	case nethttp.StatusInternalServerError:
		message = msg.GetMessage("weather.api.unavailable")
	default:
		message = msg.GetMessage("weather.api.error", err.StatusCode, err.Body)
	}
	return model.NewUpstreamError(err.StatusCode, message)
}
