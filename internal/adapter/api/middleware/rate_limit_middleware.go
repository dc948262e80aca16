package middleware

import (
	"fmt"

	"bhutanfresh/internal/infrastructure/ratelimit"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/logger"
	"bhutanfresh/pkg/response"

	"github.com/labstack/echo/v4"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles by client IP with per-action budgets.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, waitTime := m.limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s on %s (retry in %v)", ip, action, waitTime)
				message := fmt.Sprintf("Too many requests, retry in %d seconds", int(waitTime.Seconds())+1)
				return response.Error(c, errors.TooManyRequests(message))
			}

			return next(c)
		}
	}
}

func (m *RateLimitMiddleware) General() echo.MiddlewareFunc {
	return m.Limit("default")
}

func (m *RateLimitMiddleware) Auth() echo.MiddlewareFunc {
	return m.Limit("auth")
}

func (m *RateLimitMiddleware) Payment() echo.MiddlewareFunc {
	return m.Limit("payment")
}
