package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const menuItemColumns = "id, property_id, name, description, price_cents, category, available, created_at, updated_at"

func (r *OrderRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO menu_items (id, property_id, name, description, price_cents, category, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.PropertyID, item.Name, item.Description, item.PriceCents, item.Category, item.Available, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func (r *OrderRepository) UpdateMenuItem(ctx context.Context, id string, patch ports.MenuItemPatch) (*domain.MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE menu_items SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			price_cents = COALESCE($4, price_cents),
			category    = COALESCE($5, category),
			available   = COALESCE($6, available),
			updated_at  = $7
		WHERE id = $1
		RETURNING `+menuItemColumns,
		id, patch.Name, patch.Description, patch.PriceCents, patch.Category, patch.Available, time.Now().UTC(),
	)

	item, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *OrderRepository) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *OrderRepository) ListMenu(ctx context.Context, propertyID string) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE property_id = $1 ORDER BY category, name", propertyID)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

func (r *OrderRepository) FindMenuItems(ctx context.Context, propertyID string, ids []string) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE property_id = $1 AND id = ANY($2)",
		propertyID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

// CreateOrder writes the order row and all of its lines in one
// transaction; a failed line rolls back the whole order.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order insert: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, property_id, room_id, status, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.PropertyID, o.RoomID, string(o.Status), o.TotalCents, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, price_cents)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, item.MenuItemID, item.Name, item.Quantity, item.PriceCents,
		)
		if err != nil {
			_ = tx.Rollback()
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidReference
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order insert: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, property_id, room_id, status, total_cents, created_at, updated_at FROM orders WHERE id = $1", id)

	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context, propertyID string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, property_id, room_id, status, total_cents, created_at, updated_at
		FROM orders WHERE property_id = $1
		ORDER BY created_at DESC`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, property_id, room_id, status, total_cents, created_at, updated_at`,
		id, string(status), time.Now().UTC(),
	)

	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, o *domain.Order) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT menu_item_id, name, quantity, price_cents FROM order_items WHERE order_id = $1", o.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &item.PriceCents); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	return rows.Err()
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(&o.ID, &o.PropertyID, &o.RoomID, &status, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.PropertyID, &item.Name, &item.Description, &item.PriceCents, &item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
