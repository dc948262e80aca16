package router

import (
	"bhutanfresh/internal/adapter/api/handler"
	"bhutanfresh/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/shops", adminHandler.ListShops)
	admin.PATCH("/shops/:id/status", adminHandler.UpdateShopStatus)
	admin.PATCH("/products/:id/status", adminHandler.UpdateProductStatus)
}
