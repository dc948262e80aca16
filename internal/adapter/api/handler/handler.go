package handler

import (
	"bhutanfresh/internal/usecase"
)

var (
	authHandler     *AuthHandler
	productHandler  *ProductHandler
	cartHandler     *CartHandler
	wishlistHandler *WishlistHandler
	orderHandler    *OrderHandler
	paymentHandler  *PaymentHandler
	shopHandler     *ShopHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	orderUseCase *usecase.OrderUseCase,
	shopUseCase *usecase.ShopUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	paymentHandler = NewPaymentHandler(orderUseCase)
	shopHandler = NewShopHandler(shopUseCase)
	adminHandler = NewAdminHandler(shopUseCase, productUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetShopHandler() *ShopHandler {
	return shopHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
