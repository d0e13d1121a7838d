package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskify/taskify-server/internal/api/metrics"
)

// AttemptLimiter is the interface the middleware uses to check a client
// against the rate limit.
type AttemptLimiter interface {
	Allow(ctx echo.Context) (bool, error)
}

// LimiterFunc adapts a function to AttemptLimiter.
type LimiterFunc func(ctx echo.Context) (bool, error)

func (f LimiterFunc) Allow(ctx echo.Context) (bool, error) { return f(ctx) }

// RateLimit rejects requests exceeding the limiter's budget with 429.
// Limiter errors fail open: losing Redis must not lock everyone out of
// sign-in.
func RateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c)
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.LoginRateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
			}
			return next(c)
		}
	}
}
