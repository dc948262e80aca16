package entity

import (
	"time"
)

// ProductSnapshot is a copy of product fields captured when the product is
// added to a cart, immune to later product edits.
type ProductSnapshot struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Unit      string  `json:"unit,omitempty" firestore:"unit,omitempty"`
	ImageURL  string  `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	ShopID    string  `json:"shop_id" firestore:"shopId"`
	ShopName  string  `json:"shop_name,omitempty" firestore:"shopName,omitempty"`
}

type CartItem struct {
	ProductID string          `json:"product_id" firestore:"productId"`
	Quantity  int             `json:"quantity" firestore:"quantity"`
	Product   ProductSnapshot `json:"product" firestore:"product"`
}

// Cart is keyed by the owning principal id, one document per user.
// At most one line item exists per product id.
type Cart struct {
	UserID    string     `json:"user_id" firestore:"userId"`
	Items     []CartItem `json:"items" firestore:"items"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Total is always derived from the current line items, never stored.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) FindItem(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
