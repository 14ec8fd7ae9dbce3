package forecast

import (
	"fmt"
	"reflect"
	"testing"

	"go-weather/internal/domain/entity"
)

func hourlyList(date string, hours int, baseEpoch int64) *entity.ForecastList {
	list := &entity.ForecastList{}
	for h := 0; h < hours; h++ {
		list.List = append(list.List, entity.ForecastEntry{
			Dt:      baseEpoch + int64(h*3600),
			DtTxt:   fmt.Sprintf("%s %02d:00", date, h),
			Main:    entity.ForecastMain{Temp: float64(h) + 0.5},
			Weather: []entity.WeatherDescription{{Icon: "01d"}},
		})
	}
	return list
}

func TestTodayForecastFewEntries(t *testing.T) {
	list := hourlyList("2024-06-01", 4, 1000)

	got := TodayForecast(list, "2024-06-01T00:30", 1000)
	want := []entity.TodayEntry{
		{Time: "01:00", Icon: "01d", Temperature: "2 °C"},
		{Time: "02:00", Icon: "01d", Temperature: "3 °C"},
		{Time: "03:00", Icon: "01d", Temperature: "4 °C"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected entries\n got: %+v\nwant: %+v", got, want)
	}
}

func TestTodayForecastKeepsLastSix(t *testing.T) {
	list := hourlyList("2024-06-01", 24, 0)
	list.List = append(list.List, hourlyList("2024-06-02", 3, 100000).List...)

	got := TodayForecast(list, "2024-06-01", 10*3600)
	if len(got) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(got))
	}
	if got[0].Time != "18:00" || got[5].Time != "23:00" {
		t.Errorf("expected 18:00..23:00, got %s..%s", got[0].Time, got[5].Time)
	}
}

func TestTodayForecastSevenEntries(t *testing.T) {
	list := hourlyList("2024-06-01", 8, 0)
	got := TodayForecast(list, "2024-06-01", 0)
	if len(got) != 6 || got[0].Time != "02:00" {
		t.Fatalf("expected last six of seven, got %+v", got)
	}

	got = TodayForecast(hourlyList("2024-06-01", 7, 0), "2024-06-01", 0)
	if len(got) != 6 || got[0].Time != "01:00" {
		t.Fatalf("expected all six, got %+v", got)
	}
}

func TestTodayForecastNotFound(t *testing.T) {
	list := hourlyList("2024-06-01", 4, 1000)
	list.Cod = NotFoundStatus
	if got := TodayForecast(list, "2024-06-01", 0); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
	if got := TodayForecast(nil, "2024-06-01", 0); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %+v", got)
	}
}
