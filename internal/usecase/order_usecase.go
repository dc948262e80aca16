package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/internal/domain/service"
	"bhutanfresh/pkg/errors"
	"bhutanfresh/pkg/logger"
)

type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	shopRepo       repository.ShopRepository
	paymentService service.PaymentService
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	paymentService service.PaymentService,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		shopRepo:       shopRepo,
		paymentService: paymentService,
	}
}

type OrderItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	ShopID    string
}

type CreateOrderInput struct {
	Items []OrderItemInput
	Total float64
}

// Create snapshots the supplied cart contents into an immutable order. The
// cart itself is untouched: clearing it is the caller's explicit step after
// payment confirmation, so an abandoned payment leaves the cart intact.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Missing or invalid items", nil)
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	var shopIDs []string
	seenShops := make(map[string]bool)
	var computedTotal float64

	for _, in := range input.Items {
		if in.ProductID == "" {
			return nil, errors.BadRequest("Missing or invalid items", nil)
		}
		if in.Quantity < 1 {
			return nil, errors.BadRequest("Quantity must be at least 1", nil)
		}

		items = append(items, entity.OrderItem{
			ProductID: in.ProductID,
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
			ShopID:    in.ShopID,
		})
		computedTotal += in.Price * float64(in.Quantity)

		if in.ShopID != "" && !seenShops[in.ShopID] {
			seenShops[in.ShopID] = true
			shopIDs = append(shopIDs, in.ShopID)
		}
	}

	total := input.Total
	if total == 0 {
		total = computedTotal
	}

	order := &entity.Order{
		OrderNumber:   generateOrderNumber(),
		UserID:        userID,
		Items:         items,
		Total:         total,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		ShopIDs:       shopIDs,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetByID(ctx context.Context, principal *entity.Principal, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkAccess(ctx, principal, order); err != nil {
		return nil, err
	}

	return order, nil
}

// Advance updates only the fields supplied, after validating the state
// machine and the caller's claim on the order.
func (uc *OrderUseCase) Advance(ctx context.Context, principal *entity.Principal, orderID, status, paymentStatus string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkAccess(ctx, principal, order); err != nil {
		return nil, err
	}

	if err := applyTransition(order, status, paymentStatus); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*entity.Order, int64, error) {
	offset := (page - 1) * pageSize
	return uc.orderRepo.ListByUserID(ctx, userID, pageSize, offset)
}

// ListBySeller returns orders containing at least one line item from the
// caller's shop.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, principal *entity.Principal, page, pageSize int) ([]*entity.Order, int64, error) {
	shop, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	return uc.orderRepo.ListByShopID(ctx, shop.ID, pageSize, offset)
}

// ProcessPayment runs the mock gateway. Validation failures leave the order
// untouched; success advances both status axes and bumps the analytics
// counters best-effort.
func (uc *OrderUseCase) ProcessPayment(ctx context.Context, principal *entity.Principal, orderID, method string, card *service.CardDetails) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != principal.ID && !principal.IsAdmin() {
		return nil, errors.NotFound("Order", nil)
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, errors.BadRequest("Order is already paid", nil)
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, errors.BadRequest("Order has been cancelled", nil)
	}

	result, err := uc.paymentService.Charge(ctx, order, method, card)
	if err != nil {
		return nil, err
	}

	order.PaymentMethod = method
	if err := applyTransition(order, result.OrderStatus, result.PaymentStatus); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if order.PaymentStatus == entity.PaymentStatusPaid {
		uc.recordSale(ctx, order)
	}

	return order, nil
}

// checkAccess implements the ownership rule: buyers see their own orders,
// sellers see orders containing their shop's line items, admins see all.
// Non-owners get NotFound rather than Forbidden to avoid leaking order ids.
func (uc *OrderUseCase) checkAccess(ctx context.Context, principal *entity.Principal, order *entity.Order) error {
	if principal.IsAdmin() || order.UserID == principal.ID {
		return nil
	}

	shop, err := uc.shopRepo.GetByOwner(ctx, principal.ID, principal.Email)
	if err == nil && order.ContainsShop(shop.ID) {
		return nil
	}

	return errors.NotFound("Order", nil)
}

// recordSale updates the implicit analytics counters (sold/stock counts and
// shop statistics). These are best-effort: a failed increment is logged and
// never fails the payment.
func (uc *OrderUseCase) recordSale(ctx context.Context, order *entity.Order) {
	perShop := make(map[string]float64)
	for _, item := range order.Items {
		if err := uc.productRepo.IncrementSoldCount(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Warn("Failed to update sold count for product %s: %v", item.ProductID, err)
		}
		if item.ShopID != "" {
			perShop[item.ShopID] += item.Price * float64(item.Quantity)
		}
	}

	for shopID, sales := range perShop {
		if err := uc.shopRepo.IncrementStatistics(ctx, shopID, 1, sales, 0); err != nil {
			logger.Warn("Failed to update statistics for shop %s: %v", shopID, err)
		}
	}
}

func applyTransition(order *entity.Order, status, paymentStatus string) error {
	if status != "" {
		if !entity.ValidStatusTransition(order.Status, status) {
			return errors.BadRequest(fmt.Sprintf("Cannot change order status from %s to %s", order.Status, status), nil)
		}
		order.Status = status
	}
	if paymentStatus != "" {
		if !entity.ValidPaymentTransition(order.PaymentStatus, paymentStatus) {
			return errors.BadRequest(fmt.Sprintf("Cannot change payment status from %s to %s", order.PaymentStatus, paymentStatus), nil)
		}
		order.PaymentStatus = paymentStatus
	}
	return nil
}

// generateOrderNumber produces a human-readable reference, unique enough for
// display purposes only.
func generateOrderNumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("ORD-%s-%d", millis, rand.Intn(1000))
}
