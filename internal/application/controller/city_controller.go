package controller

import (
	"net/http"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/city"

	"github.com/labstack/echo/v4"
)

type CityController struct {
	api     *echo.Group
	useCase city.UseCase
}

func NewCityController(api *echo.Group, useCase city.UseCase) *CityController {
	return &CityController{api: api, useCase: useCase}
}

// InitCityRoutes initializes city search routes
func (controller *CityController) InitCityRoutes() {
	controller.api.GET("/cities", controller.SearchCities)
}

// SearchCities godoc
// @Summary Search cities
// @Description Resolve a city name into candidate coordinates. Queries shorter than 2 characters and geocoding failures return an empty list.
// @Tags cities
// @Produce json
// @Param name query string true "City name, at least 2 characters"
// @Success 200 {object} model.CitiesResponse "Matching cities with option label and value"
// @Router /cities [get]
func (controller *CityController) SearchCities(c echo.Context) error {
	matches := controller.useCase.SearchCities(c.Request().Context(), c.QueryParam("name"))

	for i := range matches {
		matches[i] = matches[i].WithOption()
	}
	return c.JSON(http.StatusOK, model.CitiesResponse{Data: matches})
}
