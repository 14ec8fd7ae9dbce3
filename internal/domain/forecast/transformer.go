package forecast

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/util/numberutils"
)

// DefaultHourlyLimit caps the number of hourly entries materialized
const DefaultHourlyLimit = 40

// ResponseTransformer reshapes provider forecast payloads into the legacy records
type ResponseTransformer struct {
	hourlyLimit int
}

func NewResponseTransformer(hourlyLimit int) *ResponseTransformer {
	if hourlyLimit <= 0 {
		hourlyLimit = DefaultHourlyLimit
	}
	return &ResponseTransformer{hourlyLimit: hourlyLimit}
}

// Validate fails with a format error unless current, hourly and daily are all present
func (t *ResponseTransformer) Validate(raw *external.ForecastResponse) error {
	if raw == nil {
		return model.NewFormatError("empty payload")
	}
	var missing []string
	if raw.Current == nil {
		missing = append(missing, "current")
	}
	if raw.Hourly == nil {
		missing = append(missing, "hourly")
	}
	if raw.Daily == nil {
		missing = append(missing, "daily")
	}
	if len(missing) > 0 {
		return model.NewFormatError("missing " + strings.Join(missing, ", "))
	}
	return nil
}

// Location returns the zone used to read offset-less provider times
func (t *ResponseTransformer) Location(raw *external.ForecastResponse) *time.Location {
	return ResolveLocation(raw.Timezone, raw.UTCOffsetSeconds)
}

// ToCurrentWeather builds the current conditions record
func (t *ResponseTransformer) ToCurrentWeather(raw *external.ForecastResponse) (*entity.CurrentWeather, error) {
	if err := t.Validate(raw); err != nil {
		return nil, err
	}

	current := raw.Current
	classifier := NewDayNightClassifier(t.Location(raw))
	isNight := classifier.IsNight(current.Time, stringAt(raw.Daily.Sunrise, 0), stringAt(raw.Daily.Sunset, 0))
	weather := ResolveOptionalWeatherCode(current.WeatherCode, isNight)

	temperature := valueOrZero(current.Temperature2m)
	feelsLike := valueOrZero(current.ApparentTemperature)
	if feelsLike == 0 {
		feelsLike = temperature
	}

	return &entity.CurrentWeather{
		Main: entity.CurrentMain{
			Temp:      numberutils.RoundHalfUp(temperature),
			FeelsLike: numberutils.RoundHalfUp(feelsLike),
			Humidity:  valueOrZero(current.RelativeHumidity2m),
			Pressure:  numberutils.RoundHalfUp(valueOrZero(current.PressureMsl)),
		},
		Weather: []entity.WeatherDescription{toDescription(weather)},
		Wind: entity.CurrentWind{
			Speed: valueOrZero(current.WindSpeed10m),
			Deg:   valueOrZero(current.WindDirection10m),
			Gust:  current.WindGusts10m,
		},
		Clouds:   entity.Clouds{All: valueOrZero(current.CloudCover)},
		Coord:    entity.Coord{Lat: raw.Latitude, Lon: raw.Longitude},
		Timezone: raw.UTCOffsetSeconds,
		OpenMeteoData: entity.OpenMeteoData{
			WeatherCode: current.WeatherCode,
			IsNight:     isNight,
		},
	}, nil
}

// ToForecastList builds the hourly list, capped at the hourly limit in provider order
func (t *ResponseTransformer) ToForecastList(raw *external.ForecastResponse) (*entity.ForecastList, error) {
	if err := t.Validate(raw); err != nil {
		return nil, err
	}

	hourly, daily := raw.Hourly, raw.Daily
	location := t.Location(raw)
	classifier := NewDayNightClassifier(location)
	sunrise, sunset := stringAt(daily.Sunrise, 0), stringAt(daily.Sunset, 0)

	size := min(len(hourly.Time), t.hourlyLimit)
	list := make([]entity.ForecastEntry, 0, size)
	for i := 0; i < size; i++ {
		at := hourly.Time[i]
		isNight := classifier.IsNight(at, sunrise, sunset)
		weather := ResolveOptionalWeatherCode(intAt(hourly.WeatherCode, i), isNight)

		list = append(list, entity.ForecastEntry{
			Dt:    epochSeconds(at, location),
			DtTxt: strings.Replace(at, "T", " ", 1),
			Main: entity.ForecastMain{
				Temp:     valueOrZero(floatAt(hourly.Temperature2m, i)),
				Humidity: valueOrZero(floatAt(hourly.RelativeHumidity2m, i)),
			},
			Weather: []entity.WeatherDescription{toDescription(weather)},
			Wind:    entity.ForecastWind{Speed: valueOrZero(floatAt(hourly.WindSpeed10m, i))},
			Clouds:  entity.Clouds{All: 0},
		})
	}

	return &entity.ForecastList{
		List: list,
		City: entity.ForecastCity{
			Coord:    entity.Coord{Lat: raw.Latitude, Lon: raw.Longitude},
			Timezone: raw.UTCOffsetSeconds,
			Sunrise:  epochSeconds(sunrise, location),
			Sunset:   epochSeconds(sunset, location),
		},
		DailyData: &entity.DailyData{
			Time:           daily.Time,
			WeatherCode:    daily.WeatherCode,
			TemperatureMax: daily.Temperature2mMax,
			TemperatureMin: daily.Temperature2mMin,
			WindSpeedMax:   daily.WindSpeed10mMax,
			WindDirection:  daily.WindDirection10mDominant,
			Sunrise:        daily.Sunrise,
			Sunset:         daily.Sunset,
		},
	}, nil
}

func toDescription(weather WeatherInfo) entity.WeatherDescription {
	return entity.WeatherDescription{
		Icon:        weather.Icon,
		Description: weather.Description,
		Main:        capitalize(weather.Description),
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// epochSeconds floors the instant to whole seconds, 0 when unparseable
func epochSeconds(value string, location *time.Location) int64 {
	at, err := ParseInstant(value, location)
	if err != nil {
		return 0
	}
	return at.Unix()
}
