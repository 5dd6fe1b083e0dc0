package models

import "time"

// Order is a committed customer order. ProductName and Price are denormalized
// copies taken at commit time so the row survives later catalog changes.
// TotalAmount is fixed at creation and never recomputed.
type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CustomerName    string    `json:"customer_name" gorm:"not null"`
	PhoneNumber     string    `json:"phone_number" gorm:"not null;index"`
	ProductName     string    `json:"product_name" gorm:"not null"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	Price           float64   `json:"price" gorm:"not null"`
	TotalAmount     float64   `json:"total_amount" gorm:"not null"`
	Status          string    `json:"status" gorm:"default:pending"`
	OrderDate       time.Time `json:"order_date"`
	DeliveryAddress string    `json:"delivery_address"`
}

// Order status constants. Transitions are free-form and performed only by
// the management layer, never by the dialog engine.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
