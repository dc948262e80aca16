package router

import (
	"bhutanfresh/internal/adapter/api/handler"
	"bhutanfresh/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListMyOrders)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)

	seller := e.Group("/v1/seller")
	seller.Use(authMiddleware.Authenticate)
	seller.GET("/orders", orderHandler.ListSellerOrders)
}
