package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/response"
	"bhutanfresh/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=100"`
	ShortDescription string   `json:"short_description" validate:"required,max=200"`
	FullDescription  string   `json:"full_description" validate:"omitempty,max=2000"`
	Category         string   `json:"category" validate:"required"`
	BasePrice        float64  `json:"base_price" validate:"required,gt=0"`
	Currency         string   `json:"currency" validate:"omitempty,len=3"`
	StockCount       int      `json:"stock_count" validate:"gte=0"`
	Unit             string   `json:"unit" validate:"omitempty"`
	Images           []string `json:"images" validate:"omitempty,dive,url"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		FullDescription:  r.FullDescription,
		Category:         r.Category,
		BasePrice:        r.BasePrice,
		Currency:         r.Currency,
		StockCount:       r.StockCount,
		Unit:             r.Unit,
		Images:           r.Images,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	category := c.QueryParam("category")

	products, total, err := h.productUseCase.List(c.Request().Context(), category, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	query := c.QueryParam("q")
	category := c.QueryParam("category")
	minPrice, _ := strconv.ParseFloat(c.QueryParam("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)

	products, total, err := h.productUseCase.Search(
		c.Request().Context(),
		query,
		category,
		minPrice,
		maxPrice,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)
	pagination := utils.GetPaginationParams(c)
	status := c.QueryParam("status")

	products, total, err := h.productUseCase.ListMine(c.Request().Context(), principal, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Create(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Update(c.Request().Context(), principal, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	principal := c.Get("principal").(*entity.Principal)

	if err := h.productUseCase.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}
