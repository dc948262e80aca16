package handler

import (
	"github.com/labstack/echo/v4"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/service"
	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/response"
)

type PaymentHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewPaymentHandler(orderUseCase *usecase.OrderUseCase) *PaymentHandler {
	return &PaymentHandler{
		orderUseCase: orderUseCase,
	}
}

type cardDetailsRequest struct {
	Number     string `json:"number"`
	CardHolder string `json:"card_holder"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type processPaymentRequest struct {
	OrderID string              `json:"order_id" validate:"required"`
	Method  string              `json:"method" validate:"required,oneof=credit_card paypal cash"`
	Card    *cardDetailsRequest `json:"card"`
}

func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req processPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var card *service.CardDetails
	if req.Card != nil {
		card = &service.CardDetails{
			Number:     req.Card.Number,
			CardHolder: req.Card.CardHolder,
			Expiry:     req.Card.Expiry,
			CVV:        req.Card.CVV,
		}
	}

	order, err := h.orderUseCase.ProcessPayment(c.Request().Context(), principal, req.OrderID, req.Method, card)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
