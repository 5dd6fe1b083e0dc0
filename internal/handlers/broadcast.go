package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/warungdigital/warung-backend/internal/services"
)

// BroadcastHandler exposes message broadcasting to the dashboard.
type BroadcastHandler struct {
	broadcast *services.BroadcastService // nil when Twilio is not configured
}

// NewBroadcastHandler creates a new broadcast handler
func NewBroadcastHandler(broadcast *services.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{broadcast: broadcast}
}

// BroadcastRequest is the payload for a broadcast send.
type BroadcastRequest struct {
	Message      string   `json:"message"`
	PhoneNumbers []string `json:"phone_numbers"`
}

// Send fans the message out to every listed phone number
func (h *BroadcastHandler) Send(c *fiber.Ctx) error {
	if h.broadcast == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "WhatsApp sending is not configured")
	}

	var req BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" || len(req.PhoneNumbers) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "message and phone_numbers are required")
	}

	results := h.broadcast.Send(c.Context(), req.Message, req.PhoneNumbers)

	return c.JSON(fiber.Map{
		"status":  "success",
		"results": results,
	})
}
