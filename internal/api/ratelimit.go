package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"golang.org/x/time/rate"
)

// rateLimit rejects requests beyond the limiter's budget with 429.
func rateLimit(l *rate.Limiter, rejected func()) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !l.Allow() {
				rejected()
				c.Response().Header().Set("Retry-After", "1")
				return writeError(c, http.StatusTooManyRequests, "rate_limit_error", "rate limit exceeded")
			}
			return next(c)
		}
	}
}
