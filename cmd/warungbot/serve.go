package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/warungdigital/warung-backend/internal/config"
	"github.com/warungdigital/warung-backend/internal/jobs"
	"github.com/warungdigital/warung-backend/internal/routes"
	"github.com/warungdigital/warung-backend/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server",
	Long:  `Starts the HTTP server: WhatsApp webhook, management API and scheduled jobs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, storageType, err := buildStore(cfg)
		if err != nil {
			return err
		}

		sessions := services.NewSessionStore()
		bot := services.NewBotService(store, sessions)

		// Twilio is optional in development; without it replies are logged
		// instead of sent.
		var (
			twilioService    *services.TwilioService
			broadcastService *services.BroadcastService
		)
		if cfg.TwilioConfigured() {
			twilioService, err = services.NewTwilioService(cfg)
			if err != nil {
				return err
			}
			broadcastService = services.NewBroadcastService(twilioService)
			log.Println("✅ Twilio service initialized")
		} else {
			log.Println("⚠️  Twilio credentials not found - replies will only be logged")
		}

		var sender services.MessageSender
		if twilioService != nil {
			sender = twilioService
		}
		reminderJob := jobs.NewReminderJob(store, sender, time.Duration(cfg.ReminderInterval)*time.Minute)
		reminderJob.Start()

		app := fiber.New(fiber.Config{
			AppName: "Warung Digital Bot v1.0.0",
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				if e, ok := err.(*fiber.Error); ok {
					code = e.Code
				}
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			},
		})

		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
		app.Use(recover.New())
		app.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		}))

		routes.Setup(app, routes.Deps{
			Config:      cfg,
			Store:       store,
			Bot:         bot,
			Twilio:      twilioService,
			Broadcast:   broadcastService,
			StorageType: storageType,
		})

		// Graceful shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-quit
			log.Println("\n🛑 Gracefully shutting down...")
			if sender != nil {
				reminderJob.Stop()
			}
			_ = app.Shutdown()
		}()

		log.Println("========================================")
		log.Printf("🤖 Warung Digital Bot starting on port %s", cfg.Port)
		log.Printf("📊 Storage: %s", storageType)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Printf("📱 WhatsApp: %s", whatsappStatus(cfg))
		log.Println("========================================")

		return app.Listen(":" + cfg.Port)
	},
}

func whatsappStatus(cfg *config.Config) string {
	if cfg.TwilioConfigured() {
		return "Configured"
	}
	return "Not configured"
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
