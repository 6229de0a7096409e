package domain

import (
	"errors"
	"time"
)

// OrderStatus is the kitchen-side state of a restaurant order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderCancelled OrderStatus = "cancelled"
)

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderStatus = errors.New("invalid order status")
var ErrEmptyOrder = errors.New("order must contain at least one item")

// IsValid reports set membership; orders follow the same permissive
// status policy as rooms.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderServed, OrderCancelled:
		return true
	}
	return false
}

// MenuItem is a dish offered by a property's restaurant.
type MenuItem struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItem is a line on an order. PriceCents snapshots the menu price at
// ordering time so later menu edits do not rewrite history.
type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

// Order is a restaurant order, optionally tied to a room for room service.
type Order struct {
	ID         string      `json:"id"`
	PropertyID string      `json:"property_id"`
	RoomID     *string     `json:"room_id,omitempty"`
	Items      []OrderItem `json:"items"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
