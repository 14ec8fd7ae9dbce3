package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/forecast"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type fakeForecastGateway struct {
	calls    int
	lat, lon float64
	response *external.ForecastResponse
	err      error
}

func (f *fakeForecastGateway) GetForecast(_ context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	f.calls++
	f.lat, f.lon = latitude, longitude
	return f.response, f.err
}

func ptr[T any](v T) *T {
	return &v
}

func payload() *external.ForecastResponse {
	hourly := &external.HourlySection{}
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		hourly.Time = append(hourly.Time, start.Add(time.Duration(i)*time.Hour).Format("2006-01-02T15:04"))
		hourly.Temperature2m = append(hourly.Temperature2m, ptr(10+float64(i%24)/2))
		hourly.WeatherCode = append(hourly.WeatherCode, ptr(0))
	}

	return &external.ForecastResponse{
		Latitude:  10,
		Longitude: 20,
		Current:   &external.CurrentSection{Time: "2024-06-01T12:00", Temperature2m: ptr(18.0), WeatherCode: ptr(1)},
		Hourly:    hourly,
		Daily: &external.DailySection{
			Time:             []string{"2024-06-01", "2024-06-02"},
			WeatherCode:      []*int{ptr(0), ptr(61)},
			Temperature2mMax: []*float64{ptr(10.0), ptr(20.0)},
			Temperature2mMin: []*float64{ptr(0.0), ptr(10.0)},
			Sunrise:          []string{"2024-06-01T06:00", "2024-06-02T06:00"},
			Sunset:           []string{"2024-06-01T21:00", "2024-06-02T21:00"},
		},
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon string
		wantErr  bool
	}{
		{"48.85", "2.35", false},
		{"0", "0", false},
		{"-90", "180", false},
		{"91", "0", true},
		{"0", "-180.5", true},
		{"", "2", true},
		{"abc", "2", true},
		{"NaN", "2", true},
	}

	for _, tt := range tests {
		_, _, err := ParseCoordinates(tt.lat, tt.lon)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCoordinates(%q, %q) error = %v, wantErr %v", tt.lat, tt.lon, err, tt.wantErr)
		}
		if err != nil && !model.IsKind(err, model.KindValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	}
}

func TestFetchWeatherDataValidatesBeforeCall(t *testing.T) {
	gateway := &fakeForecastGateway{response: payload()}
	useCase := NewWeatherUseCase(gateway, nil)

	_, err := useCase.FetchWeatherData(context.Background(), "91", "0")
	if !model.IsKind(err, model.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Latitude must be between -90 and 90 degrees" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if gateway.calls != 0 {
		t.Errorf("expected no gateway call, got %d", gateway.calls)
	}
}

func TestFetchWeatherData(t *testing.T) {
	gateway := &fakeForecastGateway{response: payload()}
	useCase := NewWeatherUseCase(gateway, forecast.NewResponseTransformer(40))

	response, err := useCase.FetchWeatherData(context.Background(), "10", "20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.lat != 10 || gateway.lon != 20 {
		t.Errorf("unexpected coordinates %v %v", gateway.lat, gateway.lon)
	}
	if response.Current.Main.Temp != 18 || response.Current.Weather[0].Icon != "01d" {
		t.Errorf("unexpected current %+v", response.Current)
	}
	if len(response.Forecast.List) != 40 {
		t.Errorf("expected 40 hourly entries, got %d", len(response.Forecast.List))
	}
}

func TestFetchWeatherDataErrors(t *testing.T) {
	upstream := model.NewUpstreamError(429, "Rate limit exceeded. Please try again later.")
	useCase := NewWeatherUseCase(&fakeForecastGateway{err: upstream}, nil)
	if _, err := useCase.FetchWeatherData(context.Background(), "10", "20"); !errors.Is(err, upstream) {
		t.Errorf("expected upstream error, got %v", err)
	}

	incomplete := payload()
	incomplete.Daily = nil
	useCase = NewWeatherUseCase(&fakeForecastGateway{response: incomplete}, nil)
	if _, err := useCase.FetchWeatherData(context.Background(), "10", "20"); !errors.Is(err, model.ErrInvalidResponseFormat) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestGetWeekForecast(t *testing.T) {
	useCase := NewWeatherUseCase(&fakeForecastGateway{response: payload()}, nil)

	days, err := useCase.GetWeekForecast(context.Background(), "10", "20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 || days[0].Temp != 5 || days[1].Temp != 15 {
		t.Fatalf("unexpected days %+v", days)
	}
	if days[1].Icon != "10d" || days[1].Description != "Slight rain" {
		t.Errorf("unexpected day 2 weather %+v", days[1])
	}
}

func TestGetTodayForecast(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	useCase := newWeatherUseCase(&fakeForecastGateway{response: payload()}, nil, func() time.Time { return now })

	entries, err := useCase.GetTodayForecast(context.Background(), "10", "20", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 6 || entries[0].Time != "18:00" || entries[5].Time != "23:00" {
		t.Fatalf("unexpected entries %+v", entries)
	}

	explicit, err := useCase.GetTodayForecast(context.Background(), "10", "20", "2024-06-01", now.Add(5*time.Hour).Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(explicit) != 3 || explicit[0].Time != "21:00" || explicit[0].Temperature != "21 °C" {
		t.Errorf("unexpected entries %+v", explicit)
	}
}

func TestAggregateLegacyForecast(t *testing.T) {
	useCase := NewWeatherUseCase(&fakeForecastGateway{}, nil)
	dto := model.AggregateForecastDTO{
		List: []entity.ForecastEntry{
			{DtTxt: "2024-06-01 09:00:00", Main: entity.ForecastMain{Temp: 10}, Weather: []entity.WeatherDescription{{Description: "rain"}}},
			{DtTxt: "2024-06-01 12:00:00", Main: entity.ForecastMain{Temp: 20}, Weather: []entity.WeatherDescription{{Description: "rain"}}},
		},
		Descriptions: []entity.DescriptionIcon{{Description: "rain", Icon: "10d"}},
	}

	days := useCase.AggregateLegacyForecast(dto)
	if len(days) != 1 || days[0].Temp != 15 || days[0].Icon != "10d" {
		t.Errorf("unexpected days %+v", days)
	}

	dto.Cod = "404"
	if days := useCase.AggregateLegacyForecast(dto); len(days) != 0 {
		t.Errorf("expected empty result for 404, got %+v", days)
	}
}

func TestRefreshForecast(t *testing.T) {
	gateway := &fakeForecastGateway{response: payload()}
	if err := NewWeatherUseCase(gateway, nil).RefreshForecast(context.Background(), 1.5, 2.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gateway.calls != 1 || gateway.lat != 1.5 {
		t.Errorf("unexpected gateway call %+v", gateway)
	}
}
