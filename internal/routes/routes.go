// Package routes defines the API routing configuration.
package routes

import (
	"vendora/internal/config"
	"vendora/internal/gateway"
	"vendora/internal/handlers"
	"vendora/internal/middleware"
	"vendora/internal/repositories"
	"vendora/internal/repositories/cache"
	"vendora/internal/services/auth"
	"vendora/internal/services/card"
	"vendora/internal/services/charge"
	"vendora/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService, stripeCfg config.StripeConfig) {
	// Repositories
	cardRepo := repositories.NewCardRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Gateway and workflow log
	paymentGateway := gateway.NewStripe(stripeCfg)
	recorder := workflow.NewRecorder(db)

	// Services
	authService := auth.NewService(userRepo, config.GetEnv("JWT_SECRET", "vendora"))
	cardService := newCardService(paymentGateway, cardRepo, cacheService, recorder)
	chargeService := newChargeService(paymentGateway, orderRepo, cacheService, recorder, stripeCfg.Currency)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	cardHandler := handlers.NewCardHandler(cardService)
	chargeHandler := handlers.NewChargeHandler(chargeService)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	cards := protected.Group("/cards")
	cards.Post("/", cardHandler.CreateCardToken)
	cards.Get("/", cardHandler.ListCards)
	cards.Get("/:customer_id/:card_id", cardHandler.RetrieveCard)
	cards.Put("/", cardHandler.UpdateCard)
	cards.Delete("/", cardHandler.DeleteCard)

	protected.Post("/charge", chargeHandler.ChargeCustomer)
}

// newCardService keeps the nil-interface subtlety in one place: a nil
// *cache.CacheService must become a nil interface, not a typed nil.
func newCardService(gw gateway.PaymentGateway, cards repositories.CardRepository, cacheService *cache.CacheService, recorder workflow.Recorder) card.Service {
	var cc card.CustomerCache
	if cacheService != nil {
		cc = cacheService
	}
	return card.NewService(gw, cards, cc, recorder)
}

func newChargeService(gw gateway.PaymentGateway, orders repositories.OrderRepository, cacheService *cache.CacheService, recorder workflow.Recorder, currency string) charge.Service {
	var cc charge.CustomerCache
	if cacheService != nil {
		cc = cacheService
	}
	return charge.NewService(gw, orders, cc, recorder, currency)
}
