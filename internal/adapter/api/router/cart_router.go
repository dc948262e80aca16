package router

import (
	"bhutanfresh/internal/adapter/api/handler"
	"bhutanfresh/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("", cartHandler.AddItem)
	cart.PUT("", cartHandler.UpdateItem)
	cart.DELETE("", cartHandler.RemoveOrClear)
	cart.GET("/count", cartHandler.Count)
}
