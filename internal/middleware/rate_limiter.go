package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP to perMinute, allowing a burst of
// the same size. It guards the credential endpoints.
func RateLimiter(perMinute float64) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := int(perMinute)
	if burst < 1 {
		burst = 1
	}

	config := middleware.RateLimiterConfig{
		// The in-memory store keeps one token bucket per identifier, which is
		// enough for a single-instance deployment.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perMinute / 60),
			Burst:     burst,
			ExpiresIn: 10 * time.Minute,
		}),

		// We identify clients by their real IP address.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier)
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
