package handler

import (
	"github.com/labstack/echo/v4"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/response"
	"bhutanfresh/pkg/utils"
)

type ShopHandler struct {
	shopUseCase *usecase.ShopUseCase
}

func NewShopHandler(shopUseCase *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
	}
}

type shopAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type registerShopRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Phone       string             `json:"phone"`
	Address     shopAddressRequest `json:"address"`
}

func (h *ShopHandler) RegisterShop(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req registerShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shop, err := h.shopUseCase.Register(c.Request().Context(), principal, usecase.RegisterShopInput{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Address: entity.ShopAddress{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, shop)
}

func (h *ShopHandler) ListShops(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	shops, total, err := h.shopUseCase.ListPublic(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, shops, total, pagination.Page, pagination.PageSize)
}

func (h *ShopHandler) GetMyShop(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	shop, err := h.shopUseCase.GetMyShop(c.Request().Context(), principal)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}

func (h *ShopHandler) DeleteMyShop(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	if err := h.shopUseCase.Delete(c.Request().Context(), principal); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Shop deleted successfully",
	})
}
