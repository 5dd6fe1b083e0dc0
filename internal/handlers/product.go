package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
)

// ProductHandler serves the catalog management API.
type ProductHandler struct {
	store storage.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(store storage.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// ListProducts returns the full catalog
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.GetAllProducts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list products")
	}

	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// CreateProduct adds a catalog entry
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(input.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product name is required")
	}
	if input.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price must not be negative")
	}
	if input.Stock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "stock must not be negative")
	}

	product, err := h.store.CreateProduct(&input)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create product")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}
