package entity

// DaySummary is one aggregated forecast day
type DaySummary struct {
	Date          string   `json:"date"`
	Temp          int      `json:"temp"`
	Humidity      int      `json:"humidity"`
	Wind          float64  `json:"wind"`
	Clouds        int      `json:"clouds"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	TempMax       *int     `json:"tempMax,omitempty"`
	TempMin       *int     `json:"tempMin,omitempty"`
	WindDirection *float64 `json:"windDirection,omitempty"`
	WeatherCode   *int     `json:"weatherCode,omitempty"`
}

// TodayEntry is one upcoming hour of the current day
type TodayEntry struct {
	Time        string `json:"time"`
	Icon        string `json:"icon"`
	Temperature string `json:"temperature"`
}

// DescriptionIcon maps a legacy textual description to an icon name
type DescriptionIcon struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
