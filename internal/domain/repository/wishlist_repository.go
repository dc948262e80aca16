package repository

import (
	"context"

	"bhutanfresh/internal/domain/entity"
)

type WishlistRepository interface {
	// GetByUserID returns a NotFound error when the user has no wishlist yet.
	GetByUserID(ctx context.Context, userID string) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
