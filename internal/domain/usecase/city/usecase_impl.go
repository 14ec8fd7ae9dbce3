package city

import (
	"context"
	"strings"
	"unicode/utf8"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const minQueryLength = 2

type cityUseCase struct {
	gateway  api.GeocodingGateway
	count    int
	language string
}

func NewCityUseCase(gateway api.GeocodingGateway, count int, language string) UseCase {
	if count <= 0 {
		count = 30
	}
	if language == "" {
		language = "en"
	}
	return &cityUseCase{
		gateway:  gateway,
		count:    count,
		language: language,
	}
}

// SearchCities trims query and degrades every lookup failure to an empty result
func (uc *cityUseCase) SearchCities(ctx context.Context, query string) []entity.CityMatch {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		log.Debug(msg.GetMessage("geocoding.search-short", minQueryLength))
		return []entity.CityMatch{}
	}

	ctx, span := otel.Tracer("go-weather/city").Start(ctx, "city.search")
	defer span.End()
	span.SetAttributes(attribute.String("city.query", query))

	results, err := uc.gateway.SearchCities(ctx, query, uc.count, uc.language)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn(msg.GetMessage("geocoding.search-fail", query, err), zap.String("query", query), zap.Error(err))
		return []entity.CityMatch{}
	}

	matches := make([]entity.CityMatch, 0, len(results))
	for _, result := range results {
		matches = append(matches, entity.CityMatch{
			Latitude:    result.Latitude,
			Longitude:   result.Longitude,
			Name:        result.Name,
			CountryCode: result.CountryCode,
			Country:     result.Country,
			Admin1:      result.Admin1,
		})
	}
	span.SetAttributes(attribute.Int("city.matches", len(matches)))
	return matches
}
