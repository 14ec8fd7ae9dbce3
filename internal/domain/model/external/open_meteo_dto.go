package external

// GeocodingResponse represents the response from the Open-Meteo geocoding search API
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult is one place returned by the geocoding search
type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude         float64         `json:"latitude"`
	Longitude        float64         `json:"longitude"`
	UTCOffsetSeconds int             `json:"utc_offset_seconds"`
	Timezone         string          `json:"timezone"`
	Current          *CurrentSection `json:"current"`
	Hourly           *HourlySection  `json:"hourly"`
	Daily            *DailySection   `json:"daily"`
}

// CurrentSection holds the requested current conditions
type CurrentSection struct {
	Time                string   `json:"time"`
	Temperature2m       *float64 `json:"temperature_2m"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WeatherCode         *int     `json:"weather_code"`
	CloudCover          *float64 `json:"cloud_cover"`
	PressureMsl         *float64 `json:"pressure_msl"`
	WindSpeed10m        *float64 `json:"wind_speed_10m"`
	WindDirection10m    *float64 `json:"wind_direction_10m"`
	WindGusts10m        *float64 `json:"wind_gusts_10m"`
}

// HourlySection holds index-aligned hourly series
type HourlySection struct {
	Time               []string   `json:"time"`
	Temperature2m      []*float64 `json:"temperature_2m"`
	WeatherCode        []*int     `json:"weather_code"`
	RelativeHumidity2m []*float64 `json:"relative_humidity_2m"`
	WindSpeed10m       []*float64 `json:"wind_speed_10m"`
}

// DailySection holds index-aligned daily series
type DailySection struct {
	Time                     []string   `json:"time"`
	WeatherCode              []*int     `json:"weather_code"`
	Temperature2mMax         []*float64 `json:"temperature_2m_max"`
	Temperature2mMin         []*float64 `json:"temperature_2m_min"`
	ApparentTemperatureMax   []*float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin   []*float64 `json:"apparent_temperature_min"`
	Sunrise                  []string   `json:"sunrise"`
	Sunset                   []string   `json:"sunset"`
	WindSpeed10mMax          []*float64 `json:"wind_speed_10m_max"`
	WindDirection10mDominant []*float64 `json:"wind_direction_10m_dominant"`
}

// APIErrorResponse is the error body returned by Open-Meteo
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
