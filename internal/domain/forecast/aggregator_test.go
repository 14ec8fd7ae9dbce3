package forecast

import (
	"reflect"
	"testing"

	"go-weather/internal/domain/entity"
)

func ptr[T any](v T) *T {
	return &v
}

func entry(dtTxt string, temp, humidity, wind, clouds float64, description string) entity.ForecastEntry {
	return entity.ForecastEntry{
		DtTxt:   dtTxt,
		Main:    entity.ForecastMain{Temp: temp, Humidity: humidity},
		Weather: []entity.WeatherDescription{{Description: description}},
		Wind:    entity.ForecastWind{Speed: wind},
		Clouds:  entity.Clouds{All: clouds},
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	inputs := []AggregationInput{
		StructuredDaily{},
		FlatHourly{},
		NewStructuredDaily(nil, nil),
		NewStructuredDaily(&entity.DailyData{}, nil),
		nil,
	}
	for _, input := range inputs {
		got := AggregateByDay(input)
		if got == nil || len(got) != 0 {
			t.Errorf("%T: expected empty non-nil result, got %v", input, got)
		}
	}
}

func TestAggregateStructuredDaily(t *testing.T) {
	daily := &entity.DailyData{
		Time:           []string{"2024-06-01", "2024-06-02"},
		WeatherCode:    []*int{ptr(0), ptr(61)},
		TemperatureMax: []*float64{ptr(10.0), ptr(20.0)},
		TemperatureMin: []*float64{ptr(0.0), ptr(10.0)},
		WindSpeedMax:   []*float64{ptr(12.346), nil},
		WindDirection:  []*float64{ptr(180.0), nil},
		Sunrise:        []string{"2024-06-01T05:50", "2024-06-02T05:49"},
		Sunset:         []string{"2024-06-01T21:45", "2024-06-02T21:46"},
	}

	got := AggregateByDay(NewStructuredDaily(daily, nil))
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	if got[0].Temp != 5 || got[1].Temp != 15 {
		t.Errorf("expected temps [5 15], got [%d %d]", got[0].Temp, got[1].Temp)
	}
	if got[0].Date != "2024-06-01" || got[1].Date != "2024-06-02" {
		t.Errorf("dates out of order: %s %s", got[0].Date, got[1].Date)
	}
	if got[0].Icon != "01d" || got[0].Description != "Clear sky" {
		t.Errorf("unexpected day 1 weather %s %s", got[0].Icon, got[0].Description)
	}
	if got[1].Icon != "10d" {
		t.Errorf("expected 10d, got %s", got[1].Icon)
	}
	if got[0].Humidity != 50 || got[0].Clouds != 50 {
		t.Errorf("expected humidity/clouds 50, got %d/%d", got[0].Humidity, got[0].Clouds)
	}
	if got[0].Wind != 12.35 || got[1].Wind != 0 {
		t.Errorf("unexpected winds %v %v", got[0].Wind, got[1].Wind)
	}
	if *got[0].TempMax != 10 || *got[0].TempMin != 0 {
		t.Errorf("unexpected max/min %d/%d", *got[0].TempMax, *got[0].TempMin)
	}
	if *got[0].WindDirection != 180 || *got[1].WindDirection != 0 {
		t.Errorf("unexpected wind directions %v %v", *got[0].WindDirection, *got[1].WindDirection)
	}
	if *got[1].WeatherCode != 61 {
		t.Errorf("expected weather code 61, got %d", *got[1].WeatherCode)
	}
}

func TestAggregateStructuredNightMidday(t *testing.T) {
	daily := &entity.DailyData{
		Time:        []string{"2024-12-21"},
		WeatherCode: []*int{ptr(2)},
		Sunrise:     []string{"2024-12-21T13:00"},
		Sunset:      []string{"2024-12-21T15:00"},
	}
	got := AggregateByDay(NewStructuredDaily(daily, nil))
	if got[0].Icon != "02n" {
		t.Errorf("midday before sunrise should be night, got %s", got[0].Icon)
	}
}

func TestAggregateFlatHourly(t *testing.T) {
	input := FlatHourly{
		List: []entity.ForecastEntry{
			entry("2024-06-01 09:00:00", 10, 60, 1.111, 20, "rain"),
			entry("2024-06-01 12:00:00", 20, 71, 2.222, 40, "rain"),
			entry("2024-06-01 15:00:00", 15, 80, 3.333, 61, "clear"),
			entry("2024-06-02 00:00:00", 7.5, 90, 4, 0, "snow"),
		},
		Descriptions: []entity.DescriptionIcon{
			{Description: "rain", Icon: "10d"},
			{Description: "clear", Icon: "01d"},
		},
	}

	got := AggregateByDay(input)
	want := []entity.DaySummary{
		{Date: "2024-06-01", Temp: 15, Humidity: 70, Wind: 2.22, Clouds: 40, Description: "rain", Icon: "10d"},
		{Date: "2024-06-02", Temp: 8, Humidity: 90, Wind: 4, Clouds: 0, Description: "snow", Icon: "unknown"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected summaries\n got: %+v\nwant: %+v", got, want)
	}
}

func TestAggregateFlatHourlyTwoTemps(t *testing.T) {
	input := FlatHourly{List: []entity.ForecastEntry{
		entry("2024-06-01 09:00:00", 10, 0, 0, 0, "clear"),
		entry("2024-06-01 12:00:00", 20, 0, 0, 0, "clear"),
	}}
	got := AggregateByDay(input)
	if len(got) != 1 || got[0].Temp != 15 {
		t.Fatalf("expected one day at 15, got %+v", got)
	}
}

func TestAggregateFlatHourlyNotFound(t *testing.T) {
	input := FlatHourly{
		Status: NotFoundStatus,
		List:   []entity.ForecastEntry{entry("2024-06-01 09:00:00", 10, 0, 0, 0, "clear")},
	}
	if got := AggregateByDay(input); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestMostFrequent(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{[]string{"rain", "rain", "clear"}, "rain"},
		{[]string{"clear", "rain", "rain"}, "rain"},
		{[]string{"clear", "rain"}, "clear"},
		{[]string{"snow", "rain", "rain", "snow"}, "snow"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := MostFrequent(tt.values); got != tt.want {
			t.Errorf("MostFrequent(%v) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

func TestDescriptionToIconName(t *testing.T) {
	list := []entity.DescriptionIcon{{Description: "fog", Icon: "50d"}}
	if got := DescriptionToIconName("fog", list); got != "50d" {
		t.Errorf("expected 50d, got %s", got)
	}
	if got := DescriptionToIconName("hail", list); got != UnknownIcon {
		t.Errorf("expected unknown, got %s", got)
	}
	if got := DescriptionToIconName("fog", nil); got != UnknownIcon {
		t.Errorf("expected unknown for empty list, got %s", got)
	}
}
