package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContextPrefersMiddlewareLogger(t *testing.T) {
	c := newTestContext()
	scoped := zap.NewNop()
	c.Set("logger", scoped)

	assert.Same(t, scoped, FromContext(c))
}

func TestFromContextFallsBackToHeaderRequestID(t *testing.T) {
	c := newTestContext()
	c.Request().Header.Set(RequestIDKey, "abc-123")

	log := FromContext(c)
	require.NotNil(t, log)
}

func TestFromContextWithoutRequestID(t *testing.T) {
	log := FromContext(newTestContext())
	require.NotNil(t, log)
}
