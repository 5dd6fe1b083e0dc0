package services

import (
	"fmt"
	"log"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
)

// defaultProducts is the starter catalog seeded on first run.
var defaultProducts = []models.ProductInput{
	{Name: "Nasi Gudeg", Price: 15000, Stock: 100, Description: "Nasi gudeg khas Yogyakarta dengan ayam", Category: "Makanan"},
	{Name: "Es Teh Manis", Price: 5000, Stock: 50, Description: "Es teh manis segar", Category: "Minuman"},
	{Name: "Ayam Goreng", Price: 20000, Stock: 30, Description: "Ayam goreng crispy", Category: "Makanan"},
	{Name: "Kerupuk", Price: 3000, Stock: 200, Description: "Kerupuk udang renyah", Category: "Snack"},
}

// EnsureDefaultCatalog seeds the starter products when the catalog is empty.
func EnsureDefaultCatalog(store storage.Store) error {
	products, err := store.GetAllProducts()
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(products) > 0 {
		return nil
	}

	for _, input := range defaultProducts {
		if _, err := store.CreateProduct(&input); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", input.Name, err)
		}
	}

	log.Printf("🌱 Seeded %d default products", len(defaultProducts))
	return nil
}
