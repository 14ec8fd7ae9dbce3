package entity

type ForecastMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type ForecastWind struct {
	Speed float64 `json:"speed"`
}

// ForecastEntry is one hourly record in the legacy list shape
type ForecastEntry struct {
	Dt      int64                `json:"dt"`
	DtTxt   string               `json:"dt_txt"`
	Main    ForecastMain         `json:"main"`
	Weather []WeatherDescription `json:"weather"`
	Wind    ForecastWind         `json:"wind"`
	Clouds  Clouds               `json:"clouds"`
}

// Description returns the first weather description or an empty string
func (e ForecastEntry) Description() string {
	if len(e.Weather) == 0 {
		return ""
	}
	return e.Weather[0].Description
}

// Icon returns the first weather icon or an empty string
func (e ForecastEntry) Icon() string {
	if len(e.Weather) == 0 {
		return ""
	}
	return e.Weather[0].Icon
}

type ForecastCity struct {
	Coord      Coord  `json:"coord"`
	Timezone   int    `json:"timezone"`
	Country    string `json:"country"`
	Population int    `json:"population"`
	Sunrise    int64  `json:"sunrise"`
	Sunset     int64  `json:"sunset"`
}

// DailyData carries the provider daily arrays index-aligned on Time
type DailyData struct {
	Time           []string   `json:"time"`
	WeatherCode    []*int     `json:"weather_code"`
	TemperatureMax []*float64 `json:"temperature_max"`
	TemperatureMin []*float64 `json:"temperature_min"`
	WindSpeedMax   []*float64 `json:"wind_speed_max"`
	WindDirection  []*float64 `json:"wind_direction"`
	Sunrise        []string   `json:"sunrise"`
	Sunset         []string   `json:"sunset"`
}

// ForecastList is the hourly forecast in the legacy shape plus the daily arrays
type ForecastList struct {
	Cod       string          `json:"cod,omitempty"`
	List      []ForecastEntry `json:"list"`
	City      ForecastCity    `json:"city"`
	DailyData *DailyData      `json:"_dailyData,omitempty"`
}
