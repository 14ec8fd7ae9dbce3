package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// errorResponse writes err as {"error","kind"} with the status of its kind
func errorResponse(c echo.Context, err error) error {
	var weatherErr *model.WeatherError
	if errors.As(err, &weatherErr) {
		return c.JSON(weatherErr.HTTPStatus(), model.ErrorResponse{Error: weatherErr.Error(), Kind: weatherErr.Kind})
	}
	return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
}
