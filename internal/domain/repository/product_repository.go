package repository

import (
	"context"

	"bhutanfresh/internal/domain/entity"
)

// ProductFilter narrows catalog listings. Zero values mean "no constraint".
type ProductFilter struct {
	Query    string
	Category string
	Status   string
	MinPrice float64
	MaxPrice float64
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	ListByShopID(ctx context.Context, shopID, status string, limit, offset int) ([]*entity.Product, int64, error)
	IncrementSoldCount(ctx context.Context, id string, quantity int) error
}
