package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/pkg/errors"
)

func newCartFixture() (*CartUseCase, *fakeProductRepo, *fakeShopRepo) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	shopRepo := newFakeShopRepo()

	shopRepo.shops["shop-1"] = &entity.Shop{ID: "shop-1", Name: "Thimphu Organics", Status: entity.ShopStatusActive}
	productRepo.products["apple"] = &entity.Product{
		ID:        "apple",
		Name:      "Red Apples",
		BasePrice: 120,
		Unit:      "kg",
		ShopID:    "shop-1",
		Status:    entity.ProductStatusActive,
	}
	productRepo.products["draft"] = &entity.Product{
		ID:     "draft",
		Name:   "Unlisted",
		Status: entity.ProductStatusPending,
	}

	return NewCartUseCase(cartRepo, productRepo, shopRepo), productRepo, shopRepo
}

func TestGetCartReturnsEmptyForNewUser(t *testing.T) {
	uc, _, _ := newCartFixture()

	cart, err := uc.GetCart(context.Background(), "buyer-1")

	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, float64(0), cart.Total)
}

func TestAddItemMergesQuantities(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "buyer-1", "apple", 2)
	assert.NoError(t, err)

	cart, err := uc.AddItem(ctx, "buyer-1", "apple", 3)
	assert.NoError(t, err)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, float64(600), cart.Total)
	assert.Equal(t, "Thimphu Organics", cart.Items[0].Product.ShopName)
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), "buyer-1", "draft", 1)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.AddItem(context.Background(), "buyer-1", "apple", 0)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateQuantityMissingItem(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.UpdateQuantity(ctx, "buyer-1", "apple", 2)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = uc.AddItem(ctx, "buyer-1", "apple", 1)
	assert.NoError(t, err)

	_, err = uc.UpdateQuantity(ctx, "buyer-1", "missing", 2)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateQuantityReplacesCount(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "buyer-1", "apple", 2)
	assert.NoError(t, err)

	cart, err := uc.UpdateQuantity(ctx, "buyer-1", "apple", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
	assert.Equal(t, float64(840), cart.Total)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	cart, err := uc.RemoveItem(ctx, "buyer-1", "apple")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = uc.AddItem(ctx, "buyer-1", "apple", 1)
	assert.NoError(t, err)

	cart, err = uc.RemoveItem(ctx, "buyer-1", "apple")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = uc.RemoveItem(ctx, "buyer-1", "apple")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartCountSumsQuantities(t *testing.T) {
	uc, productRepo, _ := newCartFixture()
	ctx := context.Background()

	productRepo.products["butter"] = &entity.Product{
		ID:        "butter",
		Name:      "Yak Butter",
		BasePrice: 450,
		Status:    entity.ProductStatusActive,
	}

	_, err := uc.AddItem(ctx, "buyer-1", "apple", 2)
	assert.NoError(t, err)
	_, err = uc.AddItem(ctx, "buyer-1", "butter", 3)
	assert.NoError(t, err)

	count, err := uc.Count(ctx, "buyer-1")
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestClearDeletesCart(t *testing.T) {
	uc, _, _ := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "buyer-1", "apple", 2)
	assert.NoError(t, err)

	assert.NoError(t, uc.Clear(ctx, "buyer-1"))

	cart, err := uc.GetCart(ctx, "buyer-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
