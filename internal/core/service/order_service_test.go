package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

type stubOrderRepo struct {
	menu   map[string]*domain.MenuItem
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		menu:   make(map[string]*domain.MenuItem),
		orders: make(map[string]*domain.Order),
	}
}

func (r *stubOrderRepo) CreateMenuItem(_ context.Context, item *domain.MenuItem) error {
	clone := *item
	r.menu[item.ID] = &clone
	return nil
}

func (r *stubOrderRepo) UpdateMenuItem(_ context.Context, id string, patch ports.MenuItemPatch) (*domain.MenuItem, error) {
	item, ok := r.menu[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.PriceCents != nil {
		item.PriceCents = *patch.PriceCents
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	clone := *item
	return &clone, nil
}

func (r *stubOrderRepo) DeleteMenuItem(_ context.Context, id string) error {
	if _, ok := r.menu[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(r.menu, id)
	return nil
}

func (r *stubOrderRepo) ListMenu(_ context.Context, propertyID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, item := range r.menu {
		if item.PropertyID == propertyID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindMenuItems(_ context.Context, propertyID string, ids []string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, id := range ids {
		if item, ok := r.menu[id]; ok && item.PropertyID == propertyID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) CreateOrder(_ context.Context, o *domain.Order) error {
	clone := *o
	r.orders[o.ID] = &clone
	return nil
}

func (r *stubOrderRepo) FindOrder(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) ListOrders(_ context.Context, propertyID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.PropertyID == propertyID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) SetOrderStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func seedMenuItem(repo *stubOrderRepo, propertyID, name string, priceCents int64, available bool) *domain.MenuItem {
	item := &domain.MenuItem{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		Name:       name,
		PriceCents: priceCents,
		Available:  available,
	}
	repo.menu[item.ID] = item
	return item
}

func orderFixture() (*OrderService, *stubOrderRepo, *domain.Property) {
	orders := newStubOrderRepo()
	properties := newStubPropertyRepo()
	property := seedProperty(properties, "owner_1")
	svc := NewOrderService(orders, properties, discardLogger)
	return svc, orders, property
}

// ---------------------------------------------------------------------------
// PlaceOrder tests
// ---------------------------------------------------------------------------

func TestOrderService_PlaceOrder_SnapshotsPrices(t *testing.T) {
	svc, orders, property := orderFixture()
	soup := seedMenuItem(orders, property.ID, "Tomato soup", 650, true)
	steak := seedMenuItem(orders, property.ID, "Ribeye", 3200, true)

	order, err := svc.PlaceOrder(context.Background(), guest, ports.PlaceOrderInput{
		PropertyID: property.ID,
		Lines: []ports.OrderLineInput{
			{MenuItemID: soup.ID, Quantity: 2},
			{MenuItemID: steak.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderPending {
		t.Errorf("expected pending, got %q", order.Status)
	}
	if order.TotalCents != 2*650+3200 {
		t.Errorf("expected total %d, got %d", 2*650+3200, order.TotalCents)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Items))
	}
	if order.Items[0].PriceCents != 650 || order.Items[0].Name != "Tomato soup" {
		t.Errorf("line 0 did not snapshot the menu item: %+v", order.Items[0])
	}

	// A later price change must not touch the stored order.
	newPrice := int64(999)
	if _, err := svc.UpdateMenuItem(context.Background(), ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}, property.ID, soup.ID, ports.MenuItemPatch{PriceCents: &newPrice}); err != nil {
		t.Fatalf("menu update failed: %v", err)
	}
	stored := orders.orders[order.ID]
	if stored.Items[0].PriceCents != 650 {
		t.Errorf("order line price must stay snapshotted, got %d", stored.Items[0].PriceCents)
	}
}

func TestOrderService_PlaceOrder_UnknownItem(t *testing.T) {
	svc, _, property := orderFixture()

	_, err := svc.PlaceOrder(context.Background(), guest, ports.PlaceOrderInput{
		PropertyID: property.ID,
		Lines:      []ports.OrderLineInput{{MenuItemID: uuid.NewString(), Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestOrderService_PlaceOrder_UnavailableItem(t *testing.T) {
	svc, orders, property := orderFixture()
	off := seedMenuItem(orders, property.ID, "Seasonal special", 1500, false)

	_, err := svc.PlaceOrder(context.Background(), guest, ports.PlaceOrderInput{
		PropertyID: property.ID,
		Lines:      []ports.OrderLineInput{{MenuItemID: off.ID, Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound for unavailable item, got %v", err)
	}
}

func TestOrderService_PlaceOrder_EmptyOrder(t *testing.T) {
	svc, _, property := orderFixture()

	if _, err := svc.PlaceOrder(context.Background(), guest, ports.PlaceOrderInput{PropertyID: property.ID}); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderService_PlaceOrder_ZeroQuantity(t *testing.T) {
	svc, orders, property := orderFixture()
	soup := seedMenuItem(orders, property.ID, "Tomato soup", 650, true)

	_, err := svc.PlaceOrder(context.Background(), guest, ports.PlaceOrderInput{
		PropertyID: property.ID,
		Lines:      []ports.OrderLineInput{{MenuItemID: soup.ID, Quantity: 0}},
	})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Menu and status tests
// ---------------------------------------------------------------------------

func TestOrderService_CreateMenuItem_ForbiddenForCustomer(t *testing.T) {
	svc, _, property := orderFixture()

	_, err := svc.CreateMenuItem(context.Background(), guest, property.ID, ports.CreateMenuItemInput{Name: "Soup", PriceCents: 100})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOrderService_CreateMenuItem_DefaultsToAvailable(t *testing.T) {
	svc, _, property := orderFixture()

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	item, err := svc.CreateMenuItem(context.Background(), owner, property.ID, ports.CreateMenuItemInput{Name: "Soup", PriceCents: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.Available {
		t.Error("new menu items must default to available")
	}
}

func TestOrderService_SetOrderStatus_RejectsUnknownStatus(t *testing.T) {
	svc, orders, property := orderFixture()
	orders.orders["order_1"] = &domain.Order{ID: "order_1", PropertyID: property.ID, Status: domain.OrderPending}

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	_, err := svc.SetOrderStatus(context.Background(), owner, "order_1", "devoured")
	if !errors.Is(err, domain.ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestOrderService_SetOrderStatus_Success(t *testing.T) {
	svc, orders, property := orderFixture()
	orders.orders["order_1"] = &domain.Order{ID: "order_1", PropertyID: property.ID, Status: domain.OrderPending}

	owner := ports.Actor{UserID: "owner_1", Role: domain.RoleOwner}
	updated, err := svc.SetOrderStatus(context.Background(), owner, "order_1", "preparing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.OrderPreparing {
		t.Errorf("expected preparing, got %q", updated.Status)
	}
}
