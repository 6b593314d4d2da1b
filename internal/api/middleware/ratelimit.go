package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Limiter counts hits per client within a scope.
type Limiter interface {
	Allow(ctx context.Context, scope, id string) (bool, time.Duration, error)
}

// RateLimit rejects clients that exceed the limiter's budget with 429, keyed
// by the client's real IP. When the limiter itself fails the request is let
// through and the failure logged.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			ok, reset, err := limiter.Allow(c.Request().Context(), scope, ip)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				secs := int(math.Ceil(reset.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
