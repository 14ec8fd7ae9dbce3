package http

import (
	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger writes client events through the application logger.
type ZapHTTPLogger struct {
	name string
}

// NewZapHTTPLogger returns a logger tagging every event with the given client name.
func NewZapHTTPLogger(name string) *ZapHTTPLogger {
	return &ZapHTTPLogger{name: name}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("http request",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug("http response",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", truncate(responseBody, 512)),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}

func (l *ZapHTTPLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, _ int, _ string, _ int64, err error, retryCount, maxRetries int) {
	log.Warn("http request retry",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
