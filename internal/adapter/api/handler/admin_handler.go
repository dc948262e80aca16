package handler

import (
	"github.com/labstack/echo/v4"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/response"
)

type AdminHandler struct {
	shopUseCase    *usecase.ShopUseCase
	productUseCase *usecase.ProductUseCase
}

func NewAdminHandler(shopUseCase *usecase.ShopUseCase, productUseCase *usecase.ProductUseCase) *AdminHandler {
	return &AdminHandler{
		shopUseCase:    shopUseCase,
		productUseCase: productUseCase,
	}
}

type updateShopStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Message string `json:"message"`
}

type updateProductStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active rejected"`
}

func (h *AdminHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shops)
}

func (h *AdminHandler) UpdateShopStatus(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req updateShopStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shop, err := h.shopUseCase.SetStatus(c.Request().Context(), principal, c.Param("id"), req.Status, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}

func (h *AdminHandler) UpdateProductStatus(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req updateProductStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.SetStatus(c.Request().Context(), principal, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
