package handler

import (
	"github.com/labstack/echo/v4"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/response"
	"bhutanfresh/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	ShopID    string  `json:"shop_id"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total float64            `json:"total" validate:"gte=0"`
}

type updateOrderStatusRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=unpaid pending paid"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ShopID:    item.ShopID,
		})
	}

	order, err := h.orderUseCase.Create(c.Request().Context(), userID, usecase.CreateOrderInput{
		Items: items,
		Total: req.Total,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListByUser(c.Request().Context(), userID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	order, err := h.orderUseCase.GetByID(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Advance(c.Request().Context(), principal, c.Param("id"), req.Status, req.PaymentStatus)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListBySeller(c.Request().Context(), principal, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}
