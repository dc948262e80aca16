package repository

import (
	"context"

	"bhutanfresh/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	ListByShopID(ctx context.Context, shopID string, limit, offset int) ([]*entity.Order, int64, error)
}
