package usecase

import (
	"context"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/logger"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

type CartResponse struct {
	UserID string            `json:"user_id"`
	Items  []entity.CartItem `json:"items"`
	Total  float64           `json:"total"`
}

func (uc *CartUseCase) newResponse(cart *entity.Cart) *CartResponse {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	return &CartResponse{
		UserID: cart.UserID,
		Items:  items,
		Total:  cart.Total(),
	}
}

// GetCart never fails on absence; a user without a cart document gets an
// empty cart.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	cart, err := uc.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.newResponse(cart), nil
}

// AddItem merges on product id: an existing line item gets its quantity
// incremented and its snapshot refreshed, never a duplicate line.
func (uc *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartResponse, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != entity.ProductStatusActive {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	cart, err := uc.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := uc.snapshotProduct(ctx, product)
	if idx := cart.FindItem(productID); idx >= 0 {
		cart.Items[idx].Quantity += quantity
		cart.Items[idx].Product = snapshot
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Product:   snapshot,
		})
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.newResponse(cart), nil
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*CartResponse, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("Cart item", nil)
		}
		return nil, err
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		return nil, errors.NotFound("Cart item", nil)
	}

	cart.Items[idx].Quantity = quantity

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.newResponse(cart), nil
}

// RemoveItem is idempotent; removing an absent line item is not an error.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (*CartResponse, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return uc.newResponse(&entity.Cart{UserID: userID}), nil
		}
		return nil, err
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		return uc.newResponse(cart), nil
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return uc.newResponse(cart), nil
}

// Clear deletes the cart document entirely.
func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Delete(ctx, userID)
}

func (uc *CartUseCase) Count(ctx context.Context, userID string) (int, error) {
	cart, err := uc.loadOrEmpty(ctx, userID)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

func (uc *CartUseCase) loadOrEmpty(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.Cart{UserID: userID}, nil
		}
		return nil, err
	}
	return cart, nil
}

func (uc *CartUseCase) snapshotProduct(ctx context.Context, product *entity.Product) entity.ProductSnapshot {
	snapshot := entity.ProductSnapshot{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.BasePrice,
		Unit:      product.Unit,
		ShopID:    product.ShopID,
	}
	if len(product.Images) > 0 {
		snapshot.ImageURL = product.Images[0]
	}

	// Shop name is display-only; a lookup failure should not block the add.
	if product.ShopID != "" {
		shop, err := uc.shopRepo.GetByID(ctx, product.ShopID)
		if err != nil {
			logger.Warn("Failed to resolve shop %s for cart snapshot: %v", product.ShopID, err)
		} else {
			snapshot.ShopName = shop.Name
		}
	}

	return snapshot
}
