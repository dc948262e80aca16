package entity

import (
	"time"
)

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
	RoleAdmin  = "ADMIN"
)

type Notification struct {
	Type      string    `json:"type" firestore:"type"`
	Title     string    `json:"title" firestore:"title"`
	Message   string    `json:"message" firestore:"message"`
	IsRead    bool      `json:"is_read" firestore:"isRead"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type User struct {
	ID           string `json:"id" firestore:"id"`
	Email        string `json:"email" firestore:"email"`
	Name         string `json:"name" firestore:"name"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Phone        string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role         string `json:"role" firestore:"role"`
	Status       string `json:"status" firestore:"status"`

	Notifications []Notification `json:"notifications,omitempty" firestore:"notifications,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
