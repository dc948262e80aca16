package middleware

import (
	"strings"

	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/response"

	"github.com/labstack/echo/v4"
)

const SessionCookieName = "session_token"

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate resolves the session token into a principal. The token comes
// from the session cookie, with an Authorization Bearer fallback for clients
// that don't carry cookies.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := tokenFromRequest(c)
		if token == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		principal, err := m.authUseCase.Resolve(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired session", err))
		}

		c.Set("uid", principal.ID)
		c.Set("principal", principal)

		return next(c)
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
