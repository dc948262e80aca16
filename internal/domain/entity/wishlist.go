package entity

import (
	"time"
)

type WishlistItem struct {
	ProductID string    `json:"product_id" firestore:"productId"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
}

// Wishlist is keyed by the owning principal id; items behave as a set on
// product id.
type Wishlist struct {
	UserID    string         `json:"user_id" firestore:"userId"`
	Items     []WishlistItem `json:"items" firestore:"items"`
	CreatedAt time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at" firestore:"updatedAt"`
}

func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
