package model

import "go-weather/internal/domain/entity"

// CitiesResponse wraps geocoding matches for the city search endpoint
type CitiesResponse struct {
	Data []entity.CityMatch `json:"data"`
}

// WeatherResponse carries both transformed views of one forecast payload
type WeatherResponse struct {
	Current  *entity.CurrentWeather `json:"current"`
	Forecast *entity.ForecastList   `json:"forecast"`
}

// AggregateForecastDTO is a legacy forecast list posted for per-day aggregation
type AggregateForecastDTO struct {
	Cod          string                   `json:"cod"`
	List         []entity.ForecastEntry   `json:"list"`
	Descriptions []entity.DescriptionIcon `json:"descriptions"`
}
