package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shorty/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics reports one HTTPMetric per request. Path is the route template
// ("/:slug"), never the concrete slug.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			m := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: c.Response().Status,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
			}

			if err != nil {
				m.Error = err.Error()
				// The error handler has not written the response yet.
				m.StatusCode = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					m.StatusCode = he.Code
				}
			}

			recorder.RecordHTTP(m)
			return err
		}
	}
}
