package ports

import (
	"context"

	"github.com/innstack/hotel-system/internal/core/domain"
)

// CreateMenuItemInput carries the data for a new menu item.
type CreateMenuItemInput struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
}

// MenuItemPatch holds a partial menu item update; nil fields are kept.
type MenuItemPatch struct {
	Name        *string
	Description *string
	PriceCents  *int64
	Category    *string
	Available   *bool
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	MenuItemID string
	Quantity   int
}

// PlaceOrderInput carries the data for a new restaurant order.
type PlaceOrderInput struct {
	PropertyID string
	RoomID     *string
	Lines      []OrderLineInput
}

// OrderRepository defines persistence for menu items and orders.
type OrderRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, id string, patch MenuItemPatch) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	ListMenu(ctx context.Context, propertyID string) ([]domain.MenuItem, error)
	FindMenuItems(ctx context.Context, propertyID string, ids []string) ([]domain.MenuItem, error)

	// CreateOrder inserts the order and its lines in one transaction.
	CreateOrder(ctx context.Context, o *domain.Order) error
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, propertyID string) ([]domain.Order, error)
	SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// OrderService defines use-case operations for the restaurant sub-system.
type OrderService interface {
	CreateMenuItem(ctx context.Context, actor Actor, propertyID string, input CreateMenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, actor Actor, propertyID, itemID string, patch MenuItemPatch) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, actor Actor, propertyID, itemID string) error
	ListMenu(ctx context.Context, propertyID string) ([]domain.MenuItem, error)

	PlaceOrder(ctx context.Context, actor Actor, input PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, actor Actor, propertyID string) ([]domain.Order, error)
	SetOrderStatus(ctx context.Context, actor Actor, orderID, status string) (*domain.Order, error)
}
