package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/warungdigital/warung-backend/internal/models"
)

// MemoryStore holds all data in memory. Used for tests and local development
// without a database.
type MemoryStore struct {
	products []*models.Product
	orders   map[uint]*models.Order

	productMu sync.RWMutex
	orderMu   sync.RWMutex

	// Counters for ID generation
	productCounter uint
	orderCounter   uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[uint]*models.Order),
	}
}

// Product operations

func (m *MemoryStore) CreateProduct(input *models.ProductInput) (*models.Product, error) {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	m.productCounter++
	product := &models.Product{
		ID:          m.productCounter,
		Name:        input.Name,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		Category:    input.Category,
	}

	m.products = append(m.products, product)
	return product, nil
}

func (m *MemoryStore) GetProduct(id uint) (*models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	for _, product := range m.products {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, fmt.Errorf("product not found")
}

func (m *MemoryStore) GetAllProducts() ([]*models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	products := make([]*models.Product, len(m.products))
	copy(products, m.products)
	return products, nil
}

// FindProductByName matches the fragment case-insensitively anywhere in the
// product name and returns the first match in insertion order. Returns
// (nil, nil) when nothing matches.
func (m *MemoryStore) FindProductByName(fragment string) (*models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	needle := strings.ToLower(fragment)
	for _, product := range m.products {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			return product, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) UpdateProduct(product *models.Product) error {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	for i, existing := range m.products {
		if existing.ID == product.ID {
			m.products[i] = product
			return nil
		}
	}
	return fmt.Errorf("product not found")
}

// Order operations

func (m *MemoryStore) CreateOrder(order *models.Order) (*models.Order, error) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	m.orderCounter++
	order.ID = m.orderCounter
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	m.orders[order.ID] = order
	return order, nil
}

func (m *MemoryStore) GetOrder(id uint) (*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	order, exists := m.orders[id]
	if !exists {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

func (m *MemoryStore) GetAllOrders() ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	orders := make([]*models.Order, 0, len(m.orders))
	// Newest first, matching the database store ordering
	for id := m.orderCounter; id >= 1; id-- {
		if order, exists := m.orders[id]; exists {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *MemoryStore) GetOrdersByPhone(phone string) ([]*models.Order, error) {
	all, _ := m.GetAllOrders()

	var orders []*models.Order
	for _, order := range all {
		if order.PhoneNumber == phone {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *MemoryStore) GetOrdersByStatus(status string) ([]*models.Order, error) {
	all, _ := m.GetAllOrders()

	var orders []*models.Order
	for _, order := range all {
		if order.Status == status {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *MemoryStore) UpdateOrderStatus(id uint, status string) error {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	order, exists := m.orders[id]
	if !exists {
		return fmt.Errorf("order not found")
	}
	order.Status = status
	return nil
}
