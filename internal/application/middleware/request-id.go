package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupRequestID assigns a uuid to requests arriving without X-Request-ID
func SetupRequestID(e *echo.Echo) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
}

// SetupRecover turns handler panics into 500 responses
func SetupRecover(e *echo.Echo) {
	e.Use(echomw.Recover())
}
