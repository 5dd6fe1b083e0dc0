package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/warungdigital/warung-backend/internal/models"
	"github.com/warungdigital/warung-backend/internal/storage"
)

// OrderHandler serves the management API for orders (dashboard consumer).
type OrderHandler struct {
	store storage.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store storage.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// ListOrders returns all orders, newest first. Supports ?status= filtering.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	var (
		orders []*models.Order
		err    error
	)

	if status := c.Query("status"); status != "" {
		orders, err = h.store.GetOrdersByStatus(status)
	} else {
		orders, err = h.store.GetAllOrders()
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list orders")
	}

	return c.JSON(fiber.Map{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns a single order by id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	order, err := h.store.GetOrder(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}
	return c.JSON(order)
}

// UpdateStatusRequest is the payload for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes the status of an order. Transitions are free-form;
// this is the management layer's call, the bot never changes statuses.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown order status")
	}

	if err := h.store.UpdateOrderStatus(uint(id), req.Status); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"id":      id,
		"status":  req.Status,
	})
}

// Stats returns order counts and revenue grouped by status.
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	orders, err := h.store.GetAllOrders()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list orders")
	}

	byStatus := make(map[string]int)
	var revenue float64
	for _, order := range orders {
		byStatus[order.Status]++
		if order.Status != models.OrderStatusCancelled {
			revenue += order.TotalAmount
		}
	}

	return c.JSON(fiber.Map{
		"total_orders":  len(orders),
		"by_status":     byStatus,
		"total_revenue": revenue,
	})
}
