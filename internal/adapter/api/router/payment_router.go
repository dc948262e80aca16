package router

import (
	"bhutanfresh/internal/adapter/api/handler"
	"bhutanfresh/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.POST("/process", paymentHandler.ProcessPayment, rateLimitMiddleware.Payment())
}
