package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestIDKey is the header and echo-context key the request-id middleware
// populates on every request.
const RequestIDKey = "X-Request-ID"

// FromContext returns the request-scoped logger seeded by the request-id
// middleware. When a request bypassed the middleware the global logger is
// tagged with whatever request id the context or headers still carry.
func FromContext(c echo.Context) *zap.Logger {
	if log, ok := c.Get("logger").(*zap.Logger); ok {
		return log
	}

	requestID, ok := c.Get(RequestIDKey).(string)
	if !ok || requestID == "" {
		requestID = c.Request().Header.Get(RequestIDKey)
	}
	if requestID == "" {
		requestID = "unknown"
	}
	return GetLogger().With(zap.String("request_id", requestID))
}
