package controller

import (
	"net/http"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type ForecastController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewForecastController(api *echo.Group, useCase weather.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes forecast aggregation routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.POST("/forecast/aggregate", controller.AggregateForecast)
}

// AggregateForecast godoc
// @Summary Aggregate a legacy hourly forecast
// @Description Group a legacy forecast list by date, averaging numeric fields and picking the most frequent description
// @Tags forecast
// @Accept json
// @Produce json
// @Param forecast body model.AggregateForecastDTO true "Legacy forecast list with optional description icons"
// @Success 200 {array} entity.DaySummary "Daily summaries in first-seen date order"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Router /forecast/aggregate [post]
func (controller *ForecastController) AggregateForecast(c echo.Context) error {
	var dto model.AggregateForecastDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("request.invalid-body"), Kind: model.KindValidation})
	}

	return c.JSON(http.StatusOK, controller.useCase.AggregateLegacyForecast(dto))
}
