package usecase

import (
	"context"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

type ProductInput struct {
	Name             string
	ShortDescription string
	FullDescription  string
	Category         string
	BasePrice        float64
	Currency         string
	StockCount       int
	Unit             string
	Images           []string
}

// Create submits a product under the caller's shop. New products enter
// pending and become buyer-visible only after admin approval.
func (uc *ProductUseCase) Create(ctx context.Context, principal *entity.Principal, input ProductInput) (*entity.Product, error) {
	shop, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Forbidden("You need an approved shop to sell products", nil)
		}
		return nil, err
	}
	if shop.Status != entity.ShopStatusActive {
		return nil, errors.Forbidden("You need an approved shop to sell products", nil)
	}

	currency := input.Currency
	if currency == "" {
		currency = "BTN"
	}

	product := &entity.Product{
		ShopID:           shop.ID,
		SellerID:         principal.ID,
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Category:         input.Category,
		BasePrice:        input.BasePrice,
		Currency:         currency,
		StockCount:       input.StockCount,
		Unit:             input.Unit,
		Images:           input.Images,
		Status:           entity.ProductStatusPending,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, principal *entity.Principal, productID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkOwnership(ctx, principal, product); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.ShortDescription = input.ShortDescription
	product.FullDescription = input.FullDescription
	product.Category = input.Category
	product.BasePrice = input.BasePrice
	product.StockCount = input.StockCount
	product.Unit = input.Unit
	product.Images = input.Images
	if input.Currency != "" {
		product.Currency = input.Currency
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete archives the product; orders referencing it keep their snapshots.
func (uc *ProductUseCase) Delete(ctx context.Context, principal *entity.Principal, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := uc.checkOwnership(ctx, principal, product); err != nil {
		return err
	}

	product.Status = entity.ProductStatusArchived
	return uc.productRepo.Update(ctx, product)
}

// Get serves the buyer-facing product page; only active products exist from
// that vantage point.
func (uc *ProductUseCase) Get(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != entity.ProductStatusActive {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (uc *ProductUseCase) List(ctx context.Context, category string, page, pageSize int) ([]*entity.Product, int64, error) {
	filter := repository.ProductFilter{
		Status:   entity.ProductStatusActive,
		Category: category,
	}
	offset := (page - 1) * pageSize
	return uc.productRepo.List(ctx, filter, pageSize, offset)
}

func (uc *ProductUseCase) Search(ctx context.Context, query, category string, minPrice, maxPrice float64, page, pageSize int) ([]*entity.Product, int64, error) {
	filter := repository.ProductFilter{
		Query:    query,
		Status:   entity.ProductStatusActive,
		Category: category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}
	offset := (page - 1) * pageSize
	return uc.productRepo.List(ctx, filter, pageSize, offset)
}

func (uc *ProductUseCase) ListMine(ctx context.Context, principal *entity.Principal, status string, page, pageSize int) ([]*entity.Product, int64, error) {
	shop, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	return uc.productRepo.ListByShopID(ctx, shop.ID, status, pageSize, offset)
}

// SetStatus is the admin approve/reject step.
func (uc *ProductUseCase) SetStatus(ctx context.Context, admin *entity.Principal, productID, status string) (*entity.Product, error) {
	if !admin.IsAdmin() {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}
	if status != entity.ProductStatusActive && status != entity.ProductStatusRejected {
		return nil, errors.BadRequest("Invalid product status", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	wasActive := product.Status == entity.ProductStatusActive
	product.Status = status

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if status == entity.ProductStatusActive && !wasActive && product.ShopID != "" {
		if err := uc.shopRepo.IncrementStatistics(ctx, product.ShopID, 0, 0, 1); err != nil {
			logger.Warn("Failed to bump product count for shop %s: %v", product.ShopID, err)
		}
	}

	return product, nil
}

func (uc *ProductUseCase) checkOwnership(ctx context.Context, principal *entity.Principal, product *entity.Product) error {
	if principal.IsAdmin() || product.SellerID == principal.ID {
		return nil
	}

	shop, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
	if err == nil && product.ShopID == shop.ID {
		return nil
	}

	return errors.Forbidden("You don't have permission to manage this product", nil)
}
