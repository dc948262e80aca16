package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	ShopID    string  `json:"shop_id" firestore:"shopId"`
}

// Order is an immutable-after-creation snapshot of a cart at checkout time.
// Only Status, PaymentStatus and PaymentMethod advance afterwards.
type Order struct {
	ID            string      `json:"id" firestore:"id"`
	OrderNumber   string      `json:"order_number" firestore:"orderNumber"`
	UserID        string      `json:"user_id" firestore:"userId"`
	Items         []OrderItem `json:"items" firestore:"items"`
	Total         float64     `json:"total" firestore:"total"`
	Status        string      `json:"status" firestore:"status"`
	PaymentStatus string      `json:"payment_status" firestore:"paymentStatus"`
	PaymentMethod string      `json:"payment_method,omitempty" firestore:"paymentMethod,omitempty"`

	// ShopIDs is denormalized from Items so seller-facing queries can use a
	// single array-contains filter.
	ShopIDs []string `json:"shop_ids" firestore:"shopIds"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (o *Order) ContainsShop(shopID string) bool {
	for _, id := range o.ShopIDs {
		if id == shopID {
			return true
		}
	}
	return false
}

var orderStatusRank = map[string]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

var paymentStatusRank = map[string]int{
	PaymentStatusUnpaid:  0,
	PaymentStatusPending: 1,
	PaymentStatusPaid:    2,
}

// ValidStatusTransition reports whether an order may move from one status to
// another: forward along pending -> processing -> shipped -> delivered, or to
// cancelled from any non-terminal status.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return true
	}
	if from == OrderStatusDelivered || from == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	fromRank, ok := orderStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := orderStatusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// ValidPaymentTransition allows forward movement only along
// unpaid -> pending -> paid.
func ValidPaymentTransition(from, to string) bool {
	fromRank, ok := paymentStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := paymentStatusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}
