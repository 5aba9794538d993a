package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

const orderColumns = "id, table_id, customer_name, order_type, status, price, created_at"

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(&o.ID, &o.TableID, &o.CustomerName, &o.OrderType, &o.Status, &o.Price, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder retrieves an order with its line items.
func (s *SQLiteStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if err := s.loadOrderItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetPendingOrderByTable returns the table's single Pending order.
func (s *SQLiteStore) GetPendingOrderByTable(ctx context.Context, tableID string) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE table_id = ? AND status = ?",
		tableID, models.OrderPending))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pending order for table %s: %w", tableID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending order: %w", err)
	}
	if err := s.loadOrderItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders returns orders matching the filter, newest first, with items.
func (s *SQLiteStore) ListOrders(ctx context.Context, f storage.OrderFilter) ([]models.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE 1=1"
	var args []any
	if f.Status != "" {
		query += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.TableID != "" {
		query += " AND table_id = ?"
		args = append(args, f.TableID)
	}
	if f.OrderType != "" {
		query += " AND order_type = ?"
		args = append(args, f.OrderType)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range orders {
		if err := s.loadOrderItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateOrderStatus sets an order's kitchen status.
func (s *SQLiteStore) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res, err := s.db.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) loadOrderItems(ctx context.Context, o *models.Order) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, menu_item_id, name, price, quantity, food_type, special_instructions, is_cancelled
		 FROM order_items WHERE order_id = ? ORDER BY rowid`, o.ID)
	if err != nil {
		return fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.MenuItemID, &it.Name, &it.Price, &it.Quantity,
			&it.FoodType, &it.SpecialInstructions, &it.IsCancelled); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order items: %w", err)
	}
	return nil
}

// upsertOrderTx writes the order row and all of its line items inside tx.
func upsertOrderTx(ctx context.Context, tx *sql.Tx, o *models.Order) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, table_id, customer_name, order_type, status, price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   table_id = excluded.table_id,
		   status = excluded.status,
		   price = excluded.price`,
		o.ID, o.TableID, o.CustomerName, o.OrderType, o.Status, o.Price, o.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("pending order for table %s: %w", o.TableID, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}

	for i := range o.Items {
		it := &o.Items[i]
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, menu_item_id, name, price, quantity, food_type, special_instructions, is_cancelled)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   quantity = excluded.quantity,
			   is_cancelled = excluded.is_cancelled`,
			it.ID, o.ID, it.MenuItemID, it.Name, it.Price, it.Quantity,
			it.FoodType, it.SpecialInstructions, it.IsCancelled,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert order item: %w", err)
		}
	}
	return nil
}
