package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/warungdigital/warung-backend/database"
	"github.com/warungdigital/warung-backend/internal/config"
	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/services"
	"github.com/warungdigital/warung-backend/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "warungbot",
	Short: "Warung Digital WhatsApp order bot",
	Long:  `Backend for the Warung Digital ordering bot: WhatsApp dialog engine, order store and management API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildStore connects storage per config: PostgreSQL by default, in-memory
// when USE_MEMORY_STORE is set. The catalog is seeded either way.
func buildStore(cfg *config.Config) (storage.Store, string, error) {
	var store storage.Store
	storageType := "PostgreSQL Database"

	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
		storageType = "In-Memory (Testing)"
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(cfg); err != nil {
			return nil, "", err
		}

		log.Println("🔄 Running database migrations...")
		if err := database.DB.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
			return nil, "", fmt.Errorf("failed to migrate database: %w", err)
		}

		store = storage.NewDatabaseStore(database.DB)
	}

	if err := services.EnsureDefaultCatalog(store); err != nil {
		return nil, "", err
	}

	return store, storageType, nil
}
