package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"shorty/internal/config"
)

const (
	bypassHeader      = "X-Rate-Limit-Bypass"
	retryAfterSeconds = 1
)

type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

var (
	errTooManyRequests = errorResponse{Error: true, Message: "Too many requests."}
	errLimiterFailure  = errorResponse{Error: true, Message: "Internal server error."}
)

// RateLimit applies a per-client token bucket keyed by the real client IP.
// Requests carrying the configured bypass secret are not limited.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:   store,
		Skipper: secretSkipper(cfg.BypassSecret),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			return c.JSON(http.StatusTooManyRequests, errTooManyRequests)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, errLimiterFailure)
		},
	})
}

func secretSkipper(secret string) middleware.Skipper {
	if secret == "" {
		return middleware.DefaultSkipper
	}
	want := []byte(secret)
	return func(c echo.Context) bool {
		got := c.Request().Header.Get(bypassHeader)
		return subtle.ConstantTimeCompare([]byte(got), want) == 1
	}
}
