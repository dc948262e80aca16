package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/internal/domain/service"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/logger"
)

type ShopUseCase struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
	notifier service.NotificationService
}

func NewShopUseCase(
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	notifier service.NotificationService,
) *ShopUseCase {
	return &ShopUseCase{
		shopRepo: shopRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type RegisterShopInput struct {
	Name        string
	Description string
	Phone       string
	Address     entity.ShopAddress
}

func validateShopInput(input RegisterShopInput) error {
	if len(input.Name) < 3 || len(input.Name) > 50 {
		return errors.BadRequest("Name must be between 3 and 50 characters", nil)
	}
	if len(input.Description) < 10 || len(input.Description) > 500 {
		return errors.BadRequest("Description must be between 10 and 500 characters", nil)
	}
	if input.Address.Street == "" {
		return errors.BadRequest("Street address is required", nil)
	}
	if input.Address.City == "" {
		return errors.BadRequest("City is required", nil)
	}
	if input.Address.State == "" {
		return errors.BadRequest("State is required", nil)
	}
	if input.Address.ZipCode == "" {
		return errors.BadRequest("ZIP code is required", nil)
	}
	return nil
}

// Register submits a shop for admin review. A principal may own at most one
// non-deleted shop; the ownership check runs against both identity keys.
func (uc *ShopUseCase) Register(ctx context.Context, principal *entity.Principal, input RegisterShopInput) (*entity.Shop, error) {
	if err := validateShopInput(input); err != nil {
		return nil, err
	}

	if _, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email); err == nil {
		return nil, errors.Conflict("You already have a shop")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := time.Now()
	shop := &entity.Shop{
		Name:        input.Name,
		Description: input.Description,
		Phone:       input.Phone,
		Address:     input.Address,
		OwnerID:     principal.ID,
		OwnerEmail:  principal.Email,
		OwnerName:   principal.Name,
		Status:      entity.ShopStatusInactive,
		StatusHistory: []entity.ShopStatusEntry{{
			Status:    entity.ShopStatusInactive,
			Timestamp: now,
			Message:   "Shop registration submitted for admin review",
			UpdatedBy: principal.Email,
		}},
	}

	if err := uc.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

func (uc *ShopUseCase) GetMyShop(ctx context.Context, principal *entity.Principal) (*entity.Shop, error) {
	return uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
}

// Delete is the owner-initiated soft delete; the status flag is one-way.
func (uc *ShopUseCase) Delete(ctx context.Context, principal *entity.Principal) error {
	shop, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
	if err != nil {
		return err
	}

	shop.Status = entity.ShopStatusDeleted
	shop.StatusHistory = append(shop.StatusHistory, entity.ShopStatusEntry{
		Status:    entity.ShopStatusDeleted,
		Timestamp: time.Now(),
		Message:   "Shop deleted by owner",
		UpdatedBy: principal.ID,
	})

	return uc.shopRepo.Update(ctx, shop)
}

// ListPublic returns only approved, buyer-visible shops.
func (uc *ShopUseCase) ListPublic(ctx context.Context, page, pageSize int) ([]*entity.Shop, int64, error) {
	offset := (page - 1) * pageSize
	return uc.shopRepo.List(ctx, entity.ShopStatusActive, pageSize, offset)
}

// ListAll is the admin view: every shop, pending registrations first.
func (uc *ShopUseCase) ListAll(ctx context.Context) ([]*entity.Shop, error) {
	shops, _, err := uc.shopRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(shops, func(i, j int) bool {
		a, b := shops[i], shops[j]
		if (a.Status == entity.ShopStatusInactive) != (b.Status == entity.ShopStatusInactive) {
			return a.Status == entity.ShopStatusInactive
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return shops, nil
}

var validShopStatuses = map[string]bool{
	entity.ShopStatusActive:    true,
	entity.ShopStatusInactive:  true,
	entity.ShopStatusRejected:  true,
	entity.ShopStatusSuspended: true,
	entity.ShopStatusDeleted:   true,
}

// SetStatus is the admin moderation transition. Approval marks the shop
// verified and promotes the owner to seller; the owner notification is
// best-effort and never fails the transition.
func (uc *ShopUseCase) SetStatus(ctx context.Context, admin *entity.Principal, shopID, status, message string) (*entity.Shop, error) {
	if !admin.IsAdmin() {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}
	if !validShopStatuses[status] {
		return nil, errors.BadRequest("Invalid shop status", nil)
	}

	shop, err := uc.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if shop.Status == entity.ShopStatusDeleted {
		return nil, errors.BadRequest("Shop has been deleted", nil)
	}

	now := time.Now()
	if message == "" {
		message = fmt.Sprintf("Shop %s by admin", status)
	}

	shop.Status = status
	shop.StatusHistory = append(shop.StatusHistory, entity.ShopStatusEntry{
		Status:    status,
		Timestamp: now,
		Message:   message,
		UpdatedBy: admin.Email,
	})

	if status == entity.ShopStatusActive {
		shop.Verification = entity.ShopVerification{
			IsVerified: true,
			VerifiedAt: &now,
			VerifiedBy: admin.ID,
		}
	}

	if err := uc.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}

	if status == entity.ShopStatusActive {
		uc.promoteOwner(ctx, shop)
	}

	if err := uc.notifier.NotifyShopStatusChange(ctx, shop.OwnerID, shop, status, message); err != nil {
		logger.Warn("Failed to notify shop owner %s: %v", shop.OwnerID, err)
	}

	return shop, nil
}

// promoteOwner flips the owner's role to SELLER on approval. The owner may
// be keyed by id or email; failure here is logged, not fatal.
func (uc *ShopUseCase) promoteOwner(ctx context.Context, shop *entity.Shop) {
	user, err := uc.userRepo.GetByID(ctx, shop.OwnerID)
	if err != nil && shop.OwnerEmail != "" {
		user, err = uc.userRepo.GetByEmail(ctx, shop.OwnerEmail)
	}
	if err != nil {
		logger.Warn("Failed to find owner of shop %s for promotion: %v", shop.ID, err)
		return
	}

	if user.Role == entity.RoleAdmin || user.Role == entity.RoleSeller {
		return
	}

	if err := uc.userRepo.UpdateRole(ctx, user.ID, entity.RoleSeller); err != nil {
		logger.Warn("Failed to promote owner of shop %s: %v", shop.ID, err)
	}
}
