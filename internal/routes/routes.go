package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/warungdigital/warung-backend/internal/config"
	"github.com/warungdigital/warung-backend/internal/handlers"
	"github.com/warungdigital/warung-backend/internal/middleware"
	"github.com/warungdigital/warung-backend/internal/services"
	"github.com/warungdigital/warung-backend/internal/storage"
)

// Deps carries everything the routes need.
type Deps struct {
	Config      *config.Config
	Store       storage.Store
	Bot         *services.BotService
	Twilio      *services.TwilioService    // nil when not configured
	Broadcast   *services.BroadcastService // nil when not configured
	StorageType string
}

// Setup configures all API routes
func Setup(app *fiber.App, deps Deps) {
	whatsappHandler := handlers.NewWhatsAppHandler(deps.Bot, deps.Twilio)
	orderHandler := handlers.NewOrderHandler(deps.Store)
	productHandler := handlers.NewProductHandler(deps.Store)
	broadcastHandler := handlers.NewBroadcastHandler(deps.Broadcast)
	healthHandler := handlers.NewHealthHandler(deps.Bot, deps.StorageType, deps.Twilio != nil)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Warung Digital Bot!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":       "/health",
				"api":          "/api",
				"webhook":      "/webhook/whatsapp",
				"test_webhook": "/test/whatsapp",
			},
		})
	})

	app.Get("/health", healthHandler.Health)

	// Webhook: signature validation can be switched off for local ngrok runs
	webhooks := app.Group("/webhook")
	if deps.Config.Environment == "development" || deps.Config.DisableWebhookValidation {
		log.Println("⚠️  WhatsApp webhook validation DISABLED")
		webhooks.Post("/whatsapp", whatsappHandler.HandleWebhook)
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(deps.Config.TwilioAuthToken), whatsappHandler.HandleWebhook)
	}

	// Test endpoint (development): reply comes back in the HTTP response
	app.Post("/test/whatsapp", whatsappHandler.HandleTestWebhook)

	// Management API (dashboard consumer)
	api := app.Group("/api")

	orders := api.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/stats", orderHandler.Stats)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Post("/", productHandler.CreateProduct)

	api.Post("/broadcast", broadcastHandler.Send)
}
