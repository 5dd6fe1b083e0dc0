package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/warungdigital/warung-backend/internal/services"
)

// WhatsAppHandler handles inbound WhatsApp webhook requests
type WhatsAppHandler struct {
	bot           *services.BotService
	twilioService *services.TwilioService // nil when Twilio is not configured
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(bot *services.BotService, twilioService *services.TwilioService) *WhatsAppHandler {
	return &WhatsAppHandler{
		bot:           bot,
		twilioService: twilioService,
	}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid string `form:"MessageSid"`
	AccountSid string `form:"AccountSid"`
	From       string `form:"From"` // "whatsapp:+628111222333"
	To         string `form:"To"`
	Body       string `form:"Body"`
	NumMedia   string `form:"NumMedia"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	// Status callbacks arrive on the same URL with an empty body; ack them.
	if payload.Body == "" || payload.From == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	phone := strings.TrimPrefix(payload.From, "whatsapp:")
	log.Printf("📱 WhatsApp message from %s: %s", phone, payload.Body)

	reply, err := h.bot.ProcessMessage(phone, payload.Body)
	if err != nil {
		log.Printf("Error processing message: %v", err)
		reply = "😔 Maaf, sistem sedang mengalami gangguan. Silakan coba lagi nanti."
	}

	if h.twilioService != nil {
		if err := h.twilioService.SendWhatsAppMessage(phone, reply); err != nil {
			log.Printf("❌ Failed to send WhatsApp reply: %v", err)
		}
	} else {
		log.Printf("📤 Reply (not sent - Twilio not configured): %s", reply)
	}

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload is the JSON shape for the development test endpoint.
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test messages without going through Twilio.
// The reply comes back in the HTTP response instead of over WhatsApp.
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook from %s: %s", payload.From, payload.Message)

	reply, err := h.bot.ProcessMessage(payload.From, payload.Message)
	if err != nil {
		log.Printf("Error processing message: %v", err)
		reply = "😔 Maaf, sistem sedang mengalami gangguan. Silakan coba lagi nanti."
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": reply,
	})
}
