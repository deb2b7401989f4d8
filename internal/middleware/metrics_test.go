package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shorty/internal/metrics"
	"shorty/internal/middleware"
	"shorty/internal/middleware/mocks"
)

func captureMetric(t *testing.T, method, target string, register func(e *echo.Echo)) metrics.HTTPMetric {
	t.Helper()

	rec := mocks.NewMockHTTPRecorder(t)

	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	register(e)

	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "192.168.1.1:12345"
	e.ServeHTTP(httptest.NewRecorder(), req)

	return captured
}

func TestMetrics_Redirect(t *testing.T) {
	m := captureMetric(t, http.MethodGet, "/abc1234", func(e *echo.Echo) {
		e.GET("/:slug", func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, "https://example.com")
		})
	})

	assert.Equal(t, http.MethodGet, m.Method)
	assert.Equal(t, "/:slug", m.Path)
	assert.Equal(t, http.StatusMovedPermanently, m.StatusCode)
	assert.Equal(t, "192.168.1.1", m.ClientIP)
	assert.GreaterOrEqual(t, m.DurationMs, 0.0)
	assert.Empty(t, m.Error)
	assert.False(t, m.Time.IsZero())
}

func TestMetrics_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"plain error", errors.New("store unavailable"), http.StatusInternalServerError},
		{"http error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too large"), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := captureMetric(t, http.MethodPost, "/links", func(e *echo.Echo) {
				e.POST("/links", func(c echo.Context) error {
					return tt.err
				})
			})

			assert.Equal(t, tt.wantStatus, m.StatusCode)
			assert.Equal(t, tt.err.Error(), m.Error)
		})
	}
}

func TestMetrics_UnknownRoute(t *testing.T) {
	m := captureMetric(t, http.MethodPut, "/links", func(e *echo.Echo) {
		e.POST("/links", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
	})

	assert.Equal(t, http.MethodPut, m.Method)
	assert.Equal(t, http.StatusMethodNotAllowed, m.StatusCode)
}
