package middleware

import (
	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/response"

	"github.com/labstack/echo/v4"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly requires a principal resolved by the auth middleware with the
// ADMIN role.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := c.Get("principal").(*entity.Principal)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		if !principal.IsAdmin() {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
