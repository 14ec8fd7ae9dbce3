package entity

// WeatherDescription is the legacy icon/description pair attached to every record
type WeatherDescription struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Main        string `json:"main"`
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Clouds struct {
	All float64 `json:"all"`
}

type CurrentMain struct {
	Temp      int     `json:"temp"`
	FeelsLike int     `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type CurrentWind struct {
	Speed float64  `json:"speed"`
	Deg   float64  `json:"deg"`
	Gust  *float64 `json:"gust"`
}

// OpenMeteoData keeps the provider values the legacy fields were derived from
type OpenMeteoData struct {
	WeatherCode *int `json:"weatherCode"`
	IsNight     bool `json:"isNight"`
}

// CurrentWeather is the current conditions in the legacy OpenWeatherMap shape
type CurrentWeather struct {
	Main          CurrentMain          `json:"main"`
	Weather       []WeatherDescription `json:"weather"`
	Wind          CurrentWind          `json:"wind"`
	Clouds        Clouds               `json:"clouds"`
	Coord         Coord                `json:"coord"`
	Timezone      int                  `json:"timezone"`
	OpenMeteoData OpenMeteoData        `json:"_openMeteoData"`
}
