package forecast

import (
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/numberutils"
)

// NotFoundStatus is the legacy provider status for an unknown location
const NotFoundStatus = "404"

const dailyDefaultPercent = 50

// AggregationInput selects how AggregateByDay builds its summaries.
// It is implemented only by StructuredDaily and FlatHourly.
type AggregationInput interface {
	aggregationInput()
}

// DailyRecord is one provider forecast day
type DailyRecord struct {
	Date          string
	WeatherCode   *int
	TempMax       *float64
	TempMin       *float64
	WindSpeedMax  *float64
	WindDirection *float64
	Sunrise       string
	Sunset        string
}

// StructuredDaily aggregates provider daily arrays, one summary per day
type StructuredDaily struct {
	Days     []DailyRecord
	Location *time.Location
}

// FlatHourly aggregates a legacy hourly list grouped by calendar date
type FlatHourly struct {
	Status       string
	List         []entity.ForecastEntry
	Descriptions []entity.DescriptionIcon
}

func (StructuredDaily) aggregationInput() {}
func (FlatHourly) aggregationInput()      {}

// NewStructuredDaily zips the daily arrays by their time index
func NewStructuredDaily(daily *entity.DailyData, location *time.Location) StructuredDaily {
	if daily == nil {
		return StructuredDaily{Location: location}
	}

	days := make([]DailyRecord, 0, len(daily.Time))
	for i, date := range daily.Time {
		days = append(days, DailyRecord{
			Date:          date,
			WeatherCode:   intAt(daily.WeatherCode, i),
			TempMax:       floatAt(daily.TemperatureMax, i),
			TempMin:       floatAt(daily.TemperatureMin, i),
			WindSpeedMax:  floatAt(daily.WindSpeedMax, i),
			WindDirection: floatAt(daily.WindDirection, i),
			Sunrise:       stringAt(daily.Sunrise, i),
			Sunset:        stringAt(daily.Sunset, i),
		})
	}
	return StructuredDaily{Days: days, Location: location}
}

// AggregateByDay builds per-day summaries in input order. Empty input gives an empty, non-nil result.
func AggregateByDay(input AggregationInput) []entity.DaySummary {
	switch in := input.(type) {
	case StructuredDaily:
		return aggregateStructured(in)
	case *StructuredDaily:
		if in != nil {
			return aggregateStructured(*in)
		}
	case FlatHourly:
		return aggregateFlat(in)
	case *FlatHourly:
		if in != nil {
			return aggregateFlat(*in)
		}
	}
	return []entity.DaySummary{}
}

func aggregateStructured(in StructuredDaily) []entity.DaySummary {
	classifier := NewDayNightClassifier(in.Location)
	summaries := make([]entity.DaySummary, 0, len(in.Days))

	for _, day := range in.Days {
		tempMax := valueOrZero(day.TempMax)
		tempMin := valueOrZero(day.TempMin)
		roundedMax := numberutils.RoundHalfUp(tempMax)
		roundedMin := numberutils.RoundHalfUp(tempMin)
		windDirection := valueOrZero(day.WindDirection)

		isNight := classifier.IsNight(day.Date+"T12:00:00", day.Sunrise, day.Sunset)
		weather := ResolveOptionalWeatherCode(day.WeatherCode, isNight)

		summaries = append(summaries, entity.DaySummary{
			Date:          day.Date,
			Temp:          numberutils.RoundHalfUp((tempMax + tempMin) / 2),
			Humidity:      dailyDefaultPercent,
			Wind:          numberutils.RoundToDecimals(valueOrZero(day.WindSpeedMax), 2),
			Clouds:        dailyDefaultPercent,
			Description:   weather.Description,
			Icon:          weather.Icon,
			TempMax:       &roundedMax,
			TempMin:       &roundedMin,
			WindDirection: &windDirection,
			WeatherCode:   day.WeatherCode,
		})
	}
	return summaries
}

type dayGroup struct {
	temps        []float64
	humidities   []float64
	winds        []float64
	clouds       []float64
	descriptions []string
}

func aggregateFlat(in FlatHourly) []entity.DaySummary {
	if in.Status == NotFoundStatus || len(in.List) == 0 {
		return []entity.DaySummary{}
	}

	var dates []string
	groups := make(map[string]*dayGroup)

	for _, item := range in.List {
		date := datePrefix(item.DtTxt)
		group, ok := groups[date]
		if !ok {
			group = &dayGroup{}
			groups[date] = group
			dates = append(dates, date)
		}
		group.temps = append(group.temps, item.Main.Temp)
		group.humidities = append(group.humidities, item.Main.Humidity)
		group.winds = append(group.winds, item.Wind.Speed)
		group.clouds = append(group.clouds, item.Clouds.All)
		group.descriptions = append(group.descriptions, item.Description())
	}

	summaries := make([]entity.DaySummary, 0, len(dates))
	for _, date := range dates {
		group := groups[date]
		description := MostFrequent(group.descriptions)
		summaries = append(summaries, entity.DaySummary{
			Date:        date,
			Temp:        numberutils.RoundHalfUp(numberutils.Average(group.temps)),
			Humidity:    numberutils.RoundHalfUp(numberutils.Average(group.humidities)),
			Wind:        numberutils.RoundToDecimals(numberutils.Average(group.winds), 2),
			Clouds:      numberutils.RoundHalfUp(numberutils.Average(group.clouds)),
			Description: description,
			Icon:        DescriptionToIconName(description, in.Descriptions),
		})
	}
	return summaries
}

// MostFrequent returns the value with the highest count. Ties keep the value seen first.
func MostFrequent(values []string) string {
	var order []string
	counts := make(map[string]int)
	for _, value := range values {
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	best := ""
	bestCount := 0
	for _, value := range order {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}

// DescriptionToIconName looks up the icon for a legacy description, "unknown" when absent
func DescriptionToIconName(description string, descriptions []entity.DescriptionIcon) string {
	for _, item := range descriptions {
		if item.Description == description && item.Icon != "" {
			return item.Icon
		}
	}
	return UnknownIcon
}

func datePrefix(dtTxt string) string {
	if len(dtTxt) < 10 {
		return dtTxt
	}
	return dtTxt[:10]
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatAt(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func intAt(values []*int, i int) *int {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func stringAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
