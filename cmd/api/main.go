package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"bhutanfresh/internal/adapter/api"
	"bhutanfresh/internal/adapter/api/handler"
	apimiddleware "bhutanfresh/internal/adapter/api/middleware"
	"bhutanfresh/internal/adapter/api/router"
	"bhutanfresh/internal/adapter/repository"
	"bhutanfresh/internal/domain/service"
	"bhutanfresh/internal/infrastructure/ratelimit"
	"bhutanfresh/internal/usecase"
	"bhutanfresh/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (for production), file path
	// fallback (for local development), else application default credentials.
	if serviceAccountJSON := os.Getenv("FIRESTORE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIRESTORE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	sessionRepo := repository.NewFirestoreSessionRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	shopRepo := repository.NewFirestoreShopRepository(firestoreClient)

	paymentService := service.NewMockPaymentService()
	notificationService := service.NewUserNotificationService(userRepo)

	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	authUseCase := usecase.NewAuthUseCase(userRepo, sessionRepo, sessionTTL)
	productUseCase := usecase.NewProductUseCase(productRepo, shopRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, shopRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, shopRepo, paymentService)
	shopUseCase := usecase.NewShopUseCase(shopRepo, userRepo, notificationService)

	handler.Setup(authUseCase, productUseCase, cartUseCase, wishlistUseCase, orderUseCase, shopUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	e.Use(rateLimitMiddleware.General())

	router.Setup(e, authMiddleware, adminMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
