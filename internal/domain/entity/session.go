package entity

import (
	"strings"
	"time"
)

type Session struct {
	Token     string    `json:"token" firestore:"token"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ExpiresAt time.Time `json:"expires_at" firestore:"expiresAt"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Principal is the resolved caller identity. Role is normalized to upper
// case at session resolution time and trusted for authorization checks.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func NewPrincipal(user *User) *Principal {
	return &Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  strings.ToUpper(strings.TrimSpace(user.Role)),
	}
}

func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
