package router

import (
	"bhutanfresh/internal/adapter/api/handler"
	"bhutanfresh/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register, rateLimitMiddleware.Auth())
	e.POST("/v1/auth/login", authHandler.Login, rateLimitMiddleware.Auth())
	e.POST("/v1/auth/logout", authHandler.Logout)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
