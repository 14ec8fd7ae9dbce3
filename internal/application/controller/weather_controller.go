package controller

import (
	"net/http"

	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FetchWeatherData)
	controller.api.GET("/weather/week", controller.GetWeekForecast)
	controller.api.GET("/weather/today", controller.GetTodayForecast)
}

// FetchWeatherData godoc
// @Summary Current weather and hourly forecast
// @Description Fetch the forecast for the coordinates and return the current conditions and up to 40 hourly entries
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude between -90 and 90"
// @Param longitude query number true "Longitude between -180 and 180"
// @Success 200 {object} model.WeatherResponse "Current weather and forecast list"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Failure 429 {object} model.ErrorResponse "Provider rate limit"
// @Failure 502 {object} model.ErrorResponse "Provider error or invalid response format"
// @Failure 503 {object} model.ErrorResponse "Provider unavailable or unreachable"
// @Router /weather [get]
func (controller *WeatherController) FetchWeatherData(c echo.Context) error {
	response, err := controller.useCase.FetchWeatherData(c.Request().Context(), c.QueryParam("latitude"), c.QueryParam("longitude"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// GetWeekForecast godoc
// @Summary Weekly forecast
// @Description One summary per forecast day with average temperature, icon and wind
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude between -90 and 90"
// @Param longitude query number true "Longitude between -180 and 180"
// @Success 200 {array} entity.DaySummary "Daily summaries in forecast order"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Failure 502 {object} model.ErrorResponse "Provider error or invalid response format"
// @Failure 503 {object} model.ErrorResponse "Provider unavailable or unreachable"
// @Router /weather/week [get]
func (controller *WeatherController) GetWeekForecast(c echo.Context) error {
	days, err := controller.useCase.GetWeekForecast(c.Request().Context(), c.QueryParam("latitude"), c.QueryParam("longitude"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, days)
}

// GetTodayForecast godoc
// @Summary Today's upcoming hours
// @Description Upcoming hourly entries of the given date, at most six
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude between -90 and 90"
// @Param longitude query number true "Longitude between -180 and 180"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today at the location"
// @Param datetime query int false "Epoch seconds, only later entries are returned, defaults to now"
// @Success 200 {array} entity.TodayEntry "Upcoming hours"
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates"
// @Failure 502 {object} model.ErrorResponse "Provider error or invalid response format"
// @Failure 503 {object} model.ErrorResponse "Provider unavailable or unreachable"
// @Router /weather/today [get]
func (controller *WeatherController) GetTodayForecast(c echo.Context) error {
	datetime := numberutils.ToInt64WithDefault(c.QueryParam("datetime"), 0)

	entries, err := controller.useCase.GetTodayForecast(
		c.Request().Context(),
		c.QueryParam("latitude"),
		c.QueryParam("longitude"),
		c.QueryParam("date"),
		datetime,
	)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
