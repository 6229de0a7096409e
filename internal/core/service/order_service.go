package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// OrderService implements the restaurant sub-system: menu management and
// order placement. Menu writes are restricted to property staff; reading
// the menu and placing orders is open to any authenticated user.
type OrderService struct {
	orders     ports.OrderRepository
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, properties ports.PropertyRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, properties: properties, logger: logger}
}

func (s *OrderService) CreateMenuItem(ctx context.Context, actor ports.Actor, propertyID string, input ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.MenuItem{
		ID:          uuid.NewString(),
		PropertyID:  propertyID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		Category:    input.Category,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orders.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info().Str("menu_item_id", item.ID).Str("property_id", propertyID).Msg("menu item created")
	return item, nil
}

func (s *OrderService) UpdateMenuItem(ctx context.Context, actor ports.Actor, propertyID, itemID string, patch ports.MenuItemPatch) (*domain.MenuItem, error) {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	return s.orders.UpdateMenuItem(ctx, itemID, patch)
}

func (s *OrderService) DeleteMenuItem(ctx context.Context, actor ports.Actor, propertyID, itemID string) error {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return err
	}
	return s.orders.DeleteMenuItem(ctx, itemID)
}

func (s *OrderService) ListMenu(ctx context.Context, propertyID string) ([]domain.MenuItem, error) {
	return s.orders.ListMenu(ctx, propertyID)
}

// PlaceOrder snapshots the current menu prices into order lines and
// writes the order plus its lines in one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, actor ports.Actor, input ports.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	ids := make([]string, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrEmptyOrder
		}
		ids = append(ids, line.MenuItemID)
	}

	items, err := s.orders.FindMenuItems(ctx, input.PropertyID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         uuid.NewString(),
		PropertyID: input.PropertyID,
		RoomID:     input.RoomID,
		Status:     domain.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, line := range input.Lines {
		item, ok := byID[line.MenuItemID]
		if !ok || !item.Available {
			return nil, domain.ErrMenuItemNotFound
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			PriceCents: item.PriceCents,
		})
		order.TotalCents += item.PriceCents * int64(line.Quantity)
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("property_id", input.PropertyID).Int64("total_cents", order.TotalCents).Msg("order placed")
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, actor ports.Actor, propertyID string) ([]domain.Order, error) {
	if err := s.authorize(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	return s.orders.ListOrders(ctx, propertyID)
}

// SetOrderStatus applies set-membership validation only, mirroring the
// room status policy.
func (s *OrderService) SetOrderStatus(ctx context.Context, actor ports.Actor, orderID, status string) (*domain.Order, error) {
	newStatus := domain.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, order.PropertyID); err != nil {
		return nil, err
	}

	return s.orders.SetOrderStatus(ctx, orderID, newStatus)
}

func (s *OrderService) authorize(ctx context.Context, actor ports.Actor, propertyID string) error {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property.OwnerID == actor.UserID {
		return nil
	}
	ok, err := s.properties.HasAccess(ctx, propertyID, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
