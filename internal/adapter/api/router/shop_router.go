package router

import (
	"bhutanfresh/internal/adapter/api/handler"
	"bhutanfresh/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupShopRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	shopHandler := handler.GetShopHandler()

	// Public shop directory
	e.GET("/v1/shops", shopHandler.ListShops)

	shops := e.Group("/v1/shops")
	shops.Use(authMiddleware.Authenticate)
	shops.POST("", shopHandler.RegisterShop)
	shops.GET("/me", shopHandler.GetMyShop)
	shops.DELETE("/me", shopHandler.DeleteMyShop)
}
