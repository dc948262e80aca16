package usecase

import (
	"context"
	"fmt"
	"strings"

	"bhutanfresh/internal/domain/entity"
	"bhutanfresh/internal/domain/repository"
	"bhutanfresh/internal/domain/service"
	"bhutanfresh/pkg/errors"
)

// In-memory repository fakes for exercising the use cases without Firestore.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) AppendNotification(ctx context.Context, id string, notification entity.Notification) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Notifications = append(user.Notifications, notification)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	if session, ok := r.sessions[token]; ok {
		return session, nil
	}
	return nil, errors.NotFound("Session", nil)
}

func (r *fakeSessionRepo) Delete(ctx context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if product, ok := r.products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	var matched []*entity.Product
	for _, product := range r.products {
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.MinPrice > 0 && product.BasePrice < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && product.BasePrice > filter.MaxPrice {
			continue
		}
		matched = append(matched, product)
	}
	return paginate(matched, limit, offset)
}

func (r *fakeProductRepo) ListByShopID(ctx context.Context, shopID, status string, limit, offset int) ([]*entity.Product, int64, error) {
	var matched []*entity.Product
	for _, product := range r.products {
		if product.ShopID != shopID {
			continue
		}
		if status != "" && product.Status != status {
			continue
		}
		matched = append(matched, product)
	}
	return paginate(matched, limit, offset)
}

func (r *fakeProductRepo) IncrementSoldCount(ctx context.Context, id string, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.SoldCount += quantity
	product.StockCount -= quantity
	return nil
}

type fakeCartRepo struct {
	carts map[string]*entity.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart)}
}

func (r *fakeCartRepo) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	if cart, ok := r.carts[userID]; ok {
		return cart, nil
	}
	return nil, errors.NotFound("Cart", nil)
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.carts[cart.UserID] = cart
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

type fakeWishlistRepo struct {
	wishlists map[string]*entity.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[string]*entity.Wishlist)}
}

func (r *fakeWishlistRepo) GetByUserID(ctx context.Context, userID string) (*entity.Wishlist, error) {
	if wishlist, ok := r.wishlists[userID]; ok {
		return wishlist, nil
	}
	return nil, errors.NotFound("Wishlist", nil)
}

func (r *fakeWishlistRepo) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	r.wishlists[wishlist.UserID] = wishlist
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if order, ok := r.orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var matched []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	return paginate(matched, limit, offset)
}

func (r *fakeOrderRepo) ListByShopID(ctx context.Context, shopID string, limit, offset int) ([]*entity.Order, int64, error) {
	var matched []*entity.Order
	for _, order := range r.orders {
		if order.ContainsShop(shopID) {
			matched = append(matched, order)
		}
	}
	return paginate(matched, limit, offset)
}

type fakeShopRepo struct {
	shops map[string]*entity.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[string]*entity.Shop)}
}

func (r *fakeShopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == "" {
		shop.ID = fmt.Sprintf("shop-%d", len(r.shops)+1)
	}
	r.shops[shop.ID] = shop
	return nil
}

func (r *fakeShopRepo) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	if shop, ok := r.shops[id]; ok {
		copied := *shop
		return &copied, nil
	}
	return nil, errors.NotFound("Shop", nil)
}

func (r *fakeShopRepo) GetByOwner(ctx context.Context, ownerID, ownerEmail string) (*entity.Shop, error) {
	for _, shop := range r.shops {
		if shop.Status == entity.ShopStatusDeleted {
			continue
		}
		if (ownerID != "" && shop.OwnerID == ownerID) || (ownerEmail != "" && shop.OwnerEmail == ownerEmail) {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Shop", nil)
}

func (r *fakeShopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	if _, ok := r.shops[shop.ID]; !ok {
		return errors.NotFound("Shop", nil)
	}
	copied := *shop
	r.shops[shop.ID] = &copied
	return nil
}

func (r *fakeShopRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Shop, int64, error) {
	var matched []*entity.Shop
	for _, shop := range r.shops {
		if status != "" && shop.Status != status {
			continue
		}
		matched = append(matched, shop)
	}
	return paginate(matched, limit, offset)
}

func (r *fakeShopRepo) IncrementStatistics(ctx context.Context, id string, orders int, sales float64, products int) error {
	shop, ok := r.shops[id]
	if !ok {
		return errors.NotFound("Shop", nil)
	}
	shop.Statistics.TotalOrders += orders
	shop.Statistics.TotalSales += sales
	shop.Statistics.TotalProducts += products
	return nil
}

type fakeNotifier struct {
	calls []string
}

func (n *fakeNotifier) NotifyShopStatusChange(ctx context.Context, ownerID string, shop *entity.Shop, status, message string) error {
	n.calls = append(n.calls, ownerID+":"+status)
	return nil
}

var _ service.NotificationService = (*fakeNotifier)(nil)

func paginate[T any](items []*T, limit, offset int) ([]*T, int64, error) {
	total := int64(len(items))
	if offset >= len(items) {
		return []*T{}, total, nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

func buyerPrincipal(id, email string) *entity.Principal {
	return &entity.Principal{ID: id, Email: email, Role: entity.RoleBuyer}
}

func adminPrincipal() *entity.Principal {
	return &entity.Principal{ID: "admin-1", Email: "admin@example.com", Role: entity.RoleAdmin}
}
