package service

import (
	"context"
	"fmt"
	"time"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
)

// NotificationService delivers best-effort notices to users. Callers treat
// failures as non-fatal.
type NotificationService interface {
	NotifyShopStatusChange(ctx context.Context, ownerID string, shop *entity.Shop, status, message string) error
}

type userNotificationService struct {
	userRepo repository.UserRepository
}

func NewUserNotificationService(userRepo repository.UserRepository) NotificationService {
	return &userNotificationService{userRepo: userRepo}
}

func (s *userNotificationService) NotifyShopStatusChange(ctx context.Context, ownerID string, shop *entity.Shop, status, message string) error {
	title := "Shop Status Updated"
	switch status {
	case entity.ShopStatusActive:
		title = "Shop Approved"
	case entity.ShopStatusRejected:
		title = "Shop Rejected"
	}

	if message == "" {
		message = fmt.Sprintf("Your shop %q has been %s.", shop.Name, status)
	}

	return s.userRepo.AppendNotification(ctx, ownerID, entity.Notification{
		Type:      "SHOP_STATUS_CHANGE",
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	})
}
