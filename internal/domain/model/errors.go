package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures surfaced by the weather pipeline
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindTransport  ErrorKind = "TRANSPORT"
	KindUpstream   ErrorKind = "UPSTREAM"
	KindFormat     ErrorKind = "FORMAT"
)

// ErrInvalidResponseFormat is wrapped by every format error
var ErrInvalidResponseFormat = errors.New("invalid response format from weather service")

// WeatherError is the typed error returned by weather gateways and use cases
type WeatherError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *WeatherError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error to the status returned by the service API
func (e *WeatherError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindTransport:
		return http.StatusServiceUnavailable
	case KindFormat:
		return http.StatusBadGateway
	case KindUpstream:
		switch e.StatusCode {
		case http.StatusBadRequest:
			return http.StatusBadRequest
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests
		case http.StatusInternalServerError:
			return http.StatusServiceUnavailable
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func NewValidationError(message string) *WeatherError {
	return &WeatherError{Kind: KindValidation, Message: message}
}

func NewTransportError(message string, err error) *WeatherError {
	return &WeatherError{Kind: KindTransport, Message: message, Err: err}
}

func NewUpstreamError(statusCode int, message string) *WeatherError {
	return &WeatherError{Kind: KindUpstream, StatusCode: statusCode, Message: message}
}

func NewFormatError(detail string) *WeatherError {
	message := ErrInvalidResponseFormat.Error()
	if detail != "" {
		message = fmt.Sprintf("%s: %s", message, detail)
	}
	return &WeatherError{Kind: KindFormat, Message: message, Err: ErrInvalidResponseFormat}
}

// IsKind reports whether err carries a WeatherError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var weatherErr *WeatherError
	return errors.As(err, &weatherErr) && weatherErr.Kind == kind
}

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind,omitempty"`
}
