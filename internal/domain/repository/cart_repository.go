package repository

import (
	"context"

	"bhutanfresh/internal/domain/entity"
)

type CartRepository interface {
	// GetByUserID returns a NotFound error when the user has no cart yet.
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, userID string) error
}
