package api

import (
	"context"
	"errors"
	"strconv"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

var acceptJSON = map[string]string{"Accept": "application/json"}

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// SearchCities searches for places by name
func (g *geocodingGatewayImpl) SearchCities(ctx context.Context, name string, count int, language string) ([]external.GeocodingResult, error) {
	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithHeaders(acceptJSON).
		WithPath("/search").
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    strconv.Itoa(count),
			"language": language,
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.GeocodingResponse)
		return response.Results, nil
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return nil, model.NewUpstreamError(statusErr.StatusCode, msg.GetMessage("geocoding.api.error", statusErr.StatusCode))
	}
	if status != 0 {
		return nil, model.NewFormatError(err.Error())
	}
	return nil, model.NewTransportError(msg.GetMessage("geocoding.api.network"), err)
}
