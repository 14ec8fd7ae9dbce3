package forecast

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

var instantLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses ISO-8601-like text. Text carrying an offset keeps it,
// text without one is read in loc (UTC when nil).
func ParseInstant(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized instant %q", value)
}

// ResolveLocation loads the IANA zone the provider names so that offsets follow
// daylight saving changes, falling back to the reported fixed offset
func ResolveLocation(name string, offsetSeconds int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return LocationFromOffset(offsetSeconds, name)
}

// LocationFromOffset builds the fixed zone the provider reports for a location
func LocationFromOffset(offsetSeconds int, name string) *time.Location {
	if offsetSeconds == 0 && name == "" {
		return time.UTC
	}
	if name == "" {
		name = "local"
	}
	return time.FixedZone(name, offsetSeconds)
}

// DayNightClassifier decides whether an instant falls outside daylight
type DayNightClassifier struct {
	location *time.Location
}

func NewDayNightClassifier(location *time.Location) DayNightClassifier {
	return DayNightClassifier{location: location}
}

// IsNight parses the three instants and classifies current.
// A parse failure is logged and treated as daytime.
func (c DayNightClassifier) IsNight(current, sunrise, sunset string) bool {
	currentAt, err := ParseInstant(current, c.location)
	if err == nil {
		var sunriseAt, sunsetAt time.Time
		if sunriseAt, err = ParseInstant(sunrise, c.location); err == nil {
			if sunsetAt, err = ParseInstant(sunset, c.location); err == nil {
				return IsNightAt(currentAt, sunriseAt, sunsetAt)
			}
		}
	}

	log.Warn(msg.GetMessage("forecast.day-night-fail", err),
		zap.String("current", current),
		zap.String("sunrise", sunrise),
		zap.String("sunset", sunset),
		zap.Error(err),
	)
	return false
}

// IsNightAt is true iff current is strictly before sunrise or strictly after sunset
func IsNightAt(current, sunrise, sunset time.Time) bool {
	return current.Before(sunrise) || current.After(sunset)
}
