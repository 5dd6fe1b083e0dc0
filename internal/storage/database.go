package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/warungdigital/warung-backend/internal/models"
)

// DatabaseStore persists catalog and orders through GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given database connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Product operations

func (d *DatabaseStore) CreateProduct(input *models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		Category:    input.Category,
	}

	if err := d.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (d *DatabaseStore) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := d.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	return &product, nil
}

func (d *DatabaseStore) GetAllProducts() ([]*models.Product, error) {
	var products []*models.Product
	if err := d.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindProductByName does a case-insensitive substring match and returns the
// first row. Multiple matches are not disambiguated; which row wins depends
// on the store iteration order. Returns (nil, nil) when nothing matches.
func (d *DatabaseStore) FindProductByName(fragment string) (*models.Product, error) {
	var product models.Product
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := d.db.Where("LOWER(name) LIKE ?", pattern).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}
	return &product, nil
}

func (d *DatabaseStore) UpdateProduct(product *models.Product) error {
	if err := d.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Order operations

func (d *DatabaseStore) CreateOrder(order *models.Order) (*models.Order, error) {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	if err := d.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (d *DatabaseStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := d.db.First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	return &order, nil
}

func (d *DatabaseStore) GetAllOrders() ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (d *DatabaseStore) GetOrdersByPhone(phone string) ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Where("phone_number = ?", phone).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by phone: %w", err)
	}
	return orders, nil
}

func (d *DatabaseStore) GetOrdersByStatus(status string) ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Where("status = ?", status).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}

func (d *DatabaseStore) UpdateOrderStatus(id uint, status string) error {
	result := d.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}
