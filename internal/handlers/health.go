package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/warungdigital/warung-backend/internal/services"
)

// HealthHandler reports service status for monitoring.
type HealthHandler struct {
	bot              *services.BotService
	storageType      string
	twilioConfigured bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(bot *services.BotService, storageType string, twilioConfigured bool) *HealthHandler {
	return &HealthHandler{
		bot:              bot,
		storageType:      storageType,
		twilioConfigured: twilioConfigured,
	}
}

// Health returns liveness information
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "Warung Digital Bot",
		"storage": h.storageType,
		"whatsapp": fiber.Map{
			"configured": h.twilioConfigured,
		},
		"sessions": h.bot.Sessions().Count(),
	})
}
