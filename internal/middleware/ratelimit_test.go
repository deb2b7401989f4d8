package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorty/internal/config"
	"shorty/internal/middleware"
)

func newLimitedEcho(cfg *config.RateLimitConfig) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Use(middleware.RateLimit(cfg, logger))
	e.GET("/:slug", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com")
	})
	return e
}

func hit(e *echo.Echo, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/abc1234", nil)
	req.RemoteAddr = ip + ":40000"
	if bypass != "" {
		req.Header.Set("X-Rate-Limit-Bypass", bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsBurst(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 10, Burst: 5, ExpireMinutes: 1})

	for i := range 5 {
		assert.Equal(t, http.StatusFound, hit(e, "10.0.0.1", "").Code, "request %d", i)
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	require.Equal(t, http.StatusFound, hit(e, "10.0.0.2", "").Code)

	rec := hit(e, "10.0.0.2", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":true,"message":"Too many requests."}`, rec.Body.String())
}

func TestRateLimit_PerClientBuckets(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	assert.Equal(t, http.StatusFound, hit(e, "10.0.0.3", "").Code)
	assert.Equal(t, http.StatusFound, hit(e, "10.0.0.4", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(e, "10.0.0.3", "").Code)
}

func TestRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		header    string
		wantCodes []int
	}{
		{
			name:      "matching secret",
			secret:    "s3cret",
			header:    "s3cret",
			wantCodes: []int{http.StatusFound, http.StatusFound, http.StatusFound},
		},
		{
			name:      "wrong secret",
			secret:    "s3cret",
			header:    "guess",
			wantCodes: []int{http.StatusFound, http.StatusTooManyRequests},
		},
		{
			name:      "no secret configured",
			secret:    "",
			header:    "anything",
			wantCodes: []int{http.StatusFound, http.StatusTooManyRequests},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedEcho(&config.RateLimitConfig{
				RPS:           0.1,
				Burst:         1,
				ExpireMinutes: 1,
				BypassSecret:  tt.secret,
			})

			for i, want := range tt.wantCodes {
				assert.Equal(t, want, hit(e, "10.0.0.5", tt.header).Code, "request %d", i)
			}
		})
	}
}
