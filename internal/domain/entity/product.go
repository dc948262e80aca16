package entity

import (
	"time"
)

const (
	ProductStatusDraft    = "draft"
	ProductStatusPending  = "pending"
	ProductStatusActive   = "active"
	ProductStatusRejected = "rejected"
	ProductStatusArchived = "archived"
)

type Product struct {
	ID               string   `json:"id" firestore:"id"`
	ShopID           string   `json:"shop_id" firestore:"shopId"`
	SellerID         string   `json:"seller_id" firestore:"sellerId"`
	Name             string   `json:"name" firestore:"name"`
	ShortDescription string   `json:"short_description" firestore:"shortDescription"`
	FullDescription  string   `json:"full_description,omitempty" firestore:"fullDescription,omitempty"`
	Category         string   `json:"category" firestore:"category"`
	BasePrice        float64  `json:"base_price" firestore:"basePrice"`
	Currency         string   `json:"currency" firestore:"currency"`
	StockCount       int      `json:"stock_count" firestore:"stockCount"`
	Unit             string   `json:"unit,omitempty" firestore:"unit,omitempty"`
	Images           []string `json:"images" firestore:"images"`
	Status           string   `json:"status" firestore:"status"`

	RatingAverage float64 `json:"rating_average" firestore:"ratingAverage"`
	RatingCount   int     `json:"rating_count" firestore:"ratingCount"`
	SoldCount     int     `json:"sold_count" firestore:"soldCount"`
	Featured      bool    `json:"featured" firestore:"featured"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
