package services

import (
	"fmt"
	"log"
	"time"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
)

// OrderFinalizer commits a completed draft as a pending order.
type OrderFinalizer struct {
	store storage.Store
}

// NewOrderFinalizer creates a finalizer writing through the given store
func NewOrderFinalizer(store storage.Store) *OrderFinalizer {
	return &OrderFinalizer{store: store}
}

// Commit persists the draft as a new pending order and returns it. The total
// is computed here, once, from the quantity and the unit price at commit
// time. Stock is not re-checked: validation happened at quantity input, and a
// concurrent order may have changed it since (accepted race).
func (f *OrderFinalizer) Commit(customerName, phone string, product *models.Product, quantity int, address string) (*models.Order, error) {
	order := &models.Order{
		CustomerName:    customerName,
		PhoneNumber:     phone,
		ProductName:     product.Name,
		Quantity:        quantity,
		Price:           product.Price,
		TotalAmount:     float64(quantity) * product.Price,
		Status:          models.OrderStatusPending,
		OrderDate:       time.Now(),
		DeliveryAddress: address,
	}

	created, err := f.store.CreateOrder(order)
	if err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	log.Printf("🧾 Order #%d created for %s (%s x%d, total %.0f)",
		created.ID, customerName, product.Name, quantity, created.TotalAmount)
	return created, nil
}
