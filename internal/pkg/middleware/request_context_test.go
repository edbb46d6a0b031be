package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetops/shipsight/internal/pkg/requestcontext"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestContextMiddleware("dashboard-service"))

	var captured *requestcontext.RequestContext
	e.GET("/", func(c echo.Context) error {
		captured = GetRequestContext(c)
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.NotNil(t, captured)
	assert.Equal(t, "dashboard-service", captured.ServiceName)
	assert.NotEmpty(t, captured.RequestID)
	assert.Equal(t, captured.RequestID, rec.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRequestContextMiddlewarePropagatesTraceID(t *testing.T) {
	e := echo.New()
	e.Use(RequestContextMiddleware("dashboard-service"))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestGetRequestContextMissing(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.Nil(t, GetRequestContext(c))
}
