package usecase

import (
	"context"
	"time"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type WishlistProductInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Unit     string  `json:"unit,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
	ShopID   string  `json:"shop_id"`
	Status   string  `json:"status"`
}

type WishlistItemResponse struct {
	ProductID string               `json:"product_id"`
	AddedAt   time.Time            `json:"added_at"`
	Product   *WishlistProductInfo `json:"product,omitempty"`
}

type WishlistResponse struct {
	UserID string                 `json:"user_id"`
	Items  []WishlistItemResponse `json:"items"`
}

// Get populates product details best-effort: items whose product vanished or
// went inactive are returned without a product body rather than failing the
// whole wishlist.
func (uc *WishlistUseCase) Get(ctx context.Context, userID string) (*WishlistResponse, error) {
	wishlist, err := uc.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]WishlistItemResponse, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		resp := WishlistItemResponse{
			ProductID: item.ProductID,
			AddedAt:   item.AddedAt,
		}

		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			logger.Debug("Skipping wishlist product %s: %v", item.ProductID, err)
		} else if product.Status == entity.ProductStatusActive {
			info := &WishlistProductInfo{
				ID:       product.ID,
				Name:     product.Name,
				Price:    product.BasePrice,
				Currency: product.Currency,
				Unit:     product.Unit,
				ShopID:   product.ShopID,
				Status:   product.Status,
			}
			if len(product.Images) > 0 {
				info.ImageURL = product.Images[0]
			}
			resp.Product = info
		}

		items = append(items, resp)
	}

	return &WishlistResponse{UserID: userID, Items: items}, nil
}

// Add has set semantics: adding a product already present is a no-op.
func (uc *WishlistUseCase) Add(ctx context.Context, userID, productID string) (*WishlistResponse, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != entity.ProductStatusActive {
		return nil, errors.BadRequest("Cannot add inactive product to wishlist", nil)
	}

	wishlist, err := uc.loadOrEmpty(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !wishlist.Contains(productID) {
		wishlist.Items = append(wishlist.Items, entity.WishlistItem{
			ProductID: productID,
			AddedAt:   time.Now(),
		})
		if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
			return nil, err
		}
	}

	return uc.Get(ctx, userID)
}

// Remove is an idempotent set-remove.
func (uc *WishlistUseCase) Remove(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return errors.BadRequest("Product ID is required", nil)
	}

	wishlist, err := uc.wishlistRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	kept := wishlist.Items[:0]
	for _, item := range wishlist.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(wishlist.Items) {
		return nil
	}
	wishlist.Items = kept

	return uc.wishlistRepo.Save(ctx, wishlist)
}

func (uc *WishlistUseCase) Contains(ctx context.Context, userID, productID string) (bool, error) {
	wishlist, err := uc.loadOrEmpty(ctx, userID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}

func (uc *WishlistUseCase) loadOrEmpty(ctx context.Context, userID string) (*entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &entity.Wishlist{UserID: userID}, nil
		}
		return nil, err
	}
	return wishlist, nil
}
