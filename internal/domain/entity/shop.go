package entity

import (
	"time"
)

const (
	// ShopStatusInactive is the initial state, pending admin review.
	ShopStatusInactive  = "inactive"
	ShopStatusActive    = "active"
	ShopStatusRejected  = "rejected"
	ShopStatusSuspended = "suspended"
	// ShopStatusDeleted is a one-way soft delete.
	ShopStatusDeleted = "deleted"
)

type ShopAddress struct {
	Street  string `json:"street" firestore:"street"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	ZipCode string `json:"zip_code" firestore:"zipCode"`
}

type ShopVerification struct {
	IsVerified bool       `json:"is_verified" firestore:"isVerified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty" firestore:"verifiedAt,omitempty"`
	VerifiedBy string     `json:"verified_by,omitempty" firestore:"verifiedBy,omitempty"`
}

// ShopStatusEntry is one record in the append-only status history.
type ShopStatusEntry struct {
	Status    string    `json:"status" firestore:"status"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	Message   string    `json:"message" firestore:"message"`
	UpdatedBy string    `json:"updated_by" firestore:"updatedBy"`
}

type ShopStatistics struct {
	TotalSales    float64 `json:"total_sales" firestore:"totalSales"`
	TotalOrders   int     `json:"total_orders" firestore:"totalOrders"`
	TotalProducts int     `json:"total_products" firestore:"totalProducts"`
}

type Shop struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`

	// OwnerID holds the principal id; seed/test accounts use an email string
	// as their id, so OwnerEmail is always stored as a second ownership key.
	OwnerID    string `json:"owner_id" firestore:"ownerId"`
	OwnerEmail string `json:"owner_email" firestore:"ownerEmail"`
	OwnerName  string `json:"owner_name,omitempty" firestore:"ownerName,omitempty"`

	Phone   string      `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address ShopAddress `json:"address" firestore:"address"`

	Status        string            `json:"status" firestore:"status"`
	Verification  ShopVerification  `json:"verification" firestore:"verification"`
	StatusHistory []ShopStatusEntry `json:"status_history" firestore:"statusHistory"`
	Statistics    ShopStatistics    `json:"statistics" firestore:"statistics"`

	Rating      float64 `json:"rating" firestore:"rating"`
	RatingCount int     `json:"rating_count" firestore:"ratingCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
