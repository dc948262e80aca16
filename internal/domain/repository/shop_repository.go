package repository

import (
	"context"

	"bhutanfresh/internal/domain/entity"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	// GetByOwner matches on owner id or owner email; seed/test accounts use
	// an email string as their principal id. Returns NotFound when neither
	// key matches a non-deleted shop.
	GetByOwner(ctx context.Context, ownerID, ownerEmail string) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Shop, int64, error)
	IncrementStatistics(ctx context.Context, id string, orders int, sales float64, products int) error
}
