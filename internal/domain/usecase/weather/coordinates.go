package weather

import (
	"strings"

	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

// ParseCoordinates validates textual coordinates before any network call
func ParseCoordinates(latitude string, longitude string) (float64, float64, error) {
	if strings.TrimSpace(latitude) == "" || strings.TrimSpace(longitude) == "" {
		return 0, 0, model.NewValidationError(msg.GetMessage("weather.coordinates-required"))
	}

	lat, latErr := numberutils.ToFloat64WithError(latitude)
	lon, lonErr := numberutils.ToFloat64WithError(longitude)
	if latErr != nil || lonErr != nil {
		return 0, 0, model.NewValidationError(msg.GetMessage("weather.coordinates-required"))
	}

	if !numberutils.IsFloat64InRange(lat, -90, 90) {
		return 0, 0, model.NewValidationError(msg.GetMessage("weather.latitude-range"))
	}
	if !numberutils.IsFloat64InRange(lon, -180, 180) {
		return 0, 0, model.NewValidationError(msg.GetMessage("weather.longitude-range"))
	}
	return lat, lon, nil
}
