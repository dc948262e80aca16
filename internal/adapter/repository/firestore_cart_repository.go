package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/pkg/errors"
)

// Carts live in one document per user, keyed by the principal id. Line item
// mutations rewrite the whole document; Firestore guarantees per-document
// atomicity, which is all the single-user-per-cart access pattern needs.
type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{client: client}
}

func (r *firestoreCartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	doc, err := r.client.Collection("carts").Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Cart", err)
		}
		return nil, errors.Internal("Failed to get cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	_, err := r.client.Collection("carts").Doc(cart.UserID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.client.Collection("carts").Doc(userID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart", err)
	}

	return nil
}
