package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Database
	UseMemoryStore bool   `env:"USE_MEMORY_STORE"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPass         string `env:"DB_PASS"`
	DBName         string `env:"DB_NAME" envDefault:"warungdigital"`

	// Twilio WhatsApp
	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `env:"TWILIO_WHATSAPP_FROM"`

	DisableWebhookValidation bool `env:"DISABLE_WEBHOOK_VALIDATION"`

	// Pending-order reminder job
	ReminderInterval int `env:"REMINDER_INTERVAL_MINUTES" envDefault:"60"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// TwilioConfigured reports whether outbound WhatsApp sending is possible.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}
