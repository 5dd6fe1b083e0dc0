package storage

import "github.com/warungdigital/warung-backend/internal/models"

// Store defines the persistence operations for the catalog and orders.
// The dialog engine only uses CreateOrder, GetAllProducts and
// FindProductByName; the rest belong to the management layer.
type Store interface {
	// Product operations
	CreateProduct(input *models.ProductInput) (*models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	GetAllProducts() ([]*models.Product, error)
	FindProductByName(fragment string) (*models.Product, error)
	UpdateProduct(product *models.Product) error

	// Order operations
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetAllOrders() ([]*models.Order, error)
	GetOrdersByPhone(phone string) ([]*models.Order, error)
	GetOrdersByStatus(status string) ([]*models.Order, error)
	UpdateOrderStatus(id uint, status string) error
}
