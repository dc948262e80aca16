package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/service"
	"bhutanfresh/pkg/errors"
)

func newOrderFixture() (*OrderUseCase, *fakeOrderRepo, *fakeProductRepo, *fakeShopRepo) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	shopRepo := newFakeShopRepo()

	shopRepo.shops["shop-1"] = &entity.Shop{
		ID:         "shop-1",
		Name:       "Paro Valley Farm",
		OwnerID:    "seller-1",
		OwnerEmail: "seller@example.com",
		Status:     entity.ShopStatusActive,
	}
	productRepo.products["rice"] = &entity.Product{
		ID:         "rice",
		Name:       "Red Rice",
		BasePrice:  95,
		StockCount: 100,
		ShopID:     "shop-1",
		Status:     entity.ProductStatusActive,
	}

	uc := NewOrderUseCase(orderRepo, productRepo, shopRepo, service.NewMockPaymentService())
	return uc, orderRepo, productRepo, shopRepo
}

func sampleItems() []OrderItemInput {
	return []OrderItemInput{
		{ProductID: "rice", Name: "Red Rice", Price: 95, Quantity: 2, ShopID: "shop-1"},
		{ProductID: "rice", Name: "Red Rice", Price: 95, Quantity: 1, ShopID: "shop-1"},
	}
}

func TestCreateOrderComputesTotalAndShopIDs(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	order, err := uc.Create(context.Background(), "buyer-1", CreateOrderInput{Items: sampleItems()})

	assert.NoError(t, err)
	assert.Equal(t, float64(285), order.Total)
	assert.Equal(t, []string{"shop-1"}, order.ShopIDs)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
}

func TestOrderSnapshotSurvivesCartMutations(t *testing.T) {
	uc, orderRepo, productRepo, shopRepo := newOrderFixture()
	cartUC := NewCartUseCase(newFakeCartRepo(), productRepo, shopRepo)
	ctx := context.Background()

	cart, err := cartUC.AddItem(ctx, "buyer-1", "rice", 3)
	assert.NoError(t, err)

	items := make([]OrderItemInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			ShopID:    item.Product.ShopID,
		})
	}

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: items})
	assert.NoError(t, err)
	assert.Equal(t, float64(285), order.Total)

	// The cart keeps changing after checkout; the order is a frozen snapshot.
	_, err = cartUC.UpdateQuantity(ctx, "buyer-1", "rice", 10)
	assert.NoError(t, err)
	_, err = cartUC.RemoveItem(ctx, "buyer-1", "rice")
	assert.NoError(t, err)
	productRepo.products["rice"].BasePrice = 999

	stored, err := orderRepo.GetByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(285), stored.Total)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, 3, stored.Items[0].Quantity)
	assert.Equal(t, float64(95), stored.Items[0].Price)
	assert.Equal(t, "Red Rice", stored.Items[0].Name)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), "buyer-1", CreateOrderInput{})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), "buyer-1", CreateOrderInput{
		Items: []OrderItemInput{{ProductID: "rice", Price: 95, Quantity: 0}},
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetOrderHidesOtherUsersOrders(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	_, err = uc.GetByID(ctx, buyerPrincipal("buyer-2", "other@example.com"), order.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	got, err := uc.GetByID(ctx, buyerPrincipal("buyer-1", "buyer@example.com"), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestSellerSeesOrdersWithTheirShopItems(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	seller := &entity.Principal{ID: "seller-1", Email: "seller@example.com", Role: entity.RoleSeller}
	got, err := uc.GetByID(ctx, seller, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	orders, total, err := uc.ListBySeller(ctx, seller, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, orders, 1)
}

func TestAdvanceEnforcesForwardOnlyStatus(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()
	admin := adminPrincipal()

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	order, err = uc.Advance(ctx, admin, order.ID, entity.OrderStatusProcessing, "")
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)

	_, err = uc.Advance(ctx, admin, order.ID, entity.OrderStatusPending, "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	order, err = uc.Advance(ctx, admin, order.ID, entity.OrderStatusShipped, "")
	assert.NoError(t, err)

	order, err = uc.Advance(ctx, admin, order.ID, entity.OrderStatusDelivered, "")
	assert.NoError(t, err)

	_, err = uc.Advance(ctx, admin, order.ID, entity.OrderStatusCancelled, "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAdvanceAllowsCancellationBeforeTerminal(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	buyer := buyerPrincipal("buyer-1", "buyer@example.com")
	order, err = uc.Advance(ctx, buyer, order.ID, entity.OrderStatusCancelled, "")
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestProcessPaymentCreditCardSucceeds(t *testing.T) {
	uc, _, productRepo, shopRepo := newOrderFixture()
	ctx := context.Background()
	buyer := buyerPrincipal("buyer-1", "buyer@example.com")

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	card := &service.CardDetails{
		Number:     "4111 1111 1111 1111",
		CardHolder: "Tashi Dorji",
		Expiry:     "12/99",
		CVV:        "123",
	}

	paid, err := uc.ProcessPayment(ctx, buyer, order.ID, service.PaymentMethodCreditCard, card)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, paid.Status)
	assert.Equal(t, entity.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, service.PaymentMethodCreditCard, paid.PaymentMethod)

	// Sale counters advance on successful payment.
	assert.Equal(t, 3, productRepo.products["rice"].SoldCount)
	assert.Equal(t, 97, productRepo.products["rice"].StockCount)
	assert.Equal(t, 1, shopRepo.shops["shop-1"].Statistics.TotalOrders)
	assert.Equal(t, float64(285), shopRepo.shops["shop-1"].Statistics.TotalSales)
}

func TestProcessPaymentCashStaysPending(t *testing.T) {
	uc, _, productRepo, _ := newOrderFixture()
	ctx := context.Background()
	buyer := buyerPrincipal("buyer-1", "buyer@example.com")

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	paid, err := uc.ProcessPayment(ctx, buyer, order.ID, service.PaymentMethodCash, nil)
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, paid.Status)
	assert.Equal(t, entity.PaymentStatusPending, paid.PaymentStatus)

	// No sale is recorded until the payment clears.
	assert.Equal(t, 0, productRepo.products["rice"].SoldCount)
}

func TestProcessPaymentRejectsDoublePayment(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()
	buyer := buyerPrincipal("buyer-1", "buyer@example.com")

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	_, err = uc.ProcessPayment(ctx, buyer, order.ID, service.PaymentMethodPaypal, nil)
	assert.NoError(t, err)

	_, err = uc.ProcessPayment(ctx, buyer, order.ID, service.PaymentMethodPaypal, nil)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestProcessPaymentRejectsOtherUsersOrder(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	_, err = uc.ProcessPayment(ctx, buyerPrincipal("buyer-2", "other@example.com"), order.ID, service.PaymentMethodPaypal, nil)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestProcessPaymentInvalidCardLeavesOrderUntouched(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()
	ctx := context.Background()
	buyer := buyerPrincipal("buyer-1", "buyer@example.com")

	order, err := uc.Create(ctx, "buyer-1", CreateOrderInput{Items: sampleItems()})
	assert.NoError(t, err)

	card := &service.CardDetails{
		Number:     "4111111111111111",
		CardHolder: "Tashi Dorji",
		Expiry:     "01/20",
		CVV:        "123",
	}

	_, err = uc.ProcessPayment(ctx, buyer, order.ID, service.PaymentMethodCreditCard, card)
	assert.EqualError(t, err, "BAD_REQUEST: Card has expired")

	stored, err := orderRepo.GetByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusUnpaid, stored.PaymentStatus)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}
