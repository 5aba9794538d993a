package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

const billColumns = `id, table_id, table_number, total_amount, discount_value, final_amount,
	status, payment_method, payment_cash, payment_online, created_at, paid_at`

func scanBill(row interface{ Scan(...any) error }) (*models.Bill, error) {
	b := &models.Bill{}
	err := row.Scan(&b.ID, &b.TableID, &b.TableNumber, &b.TotalAmount, &b.DiscountValue,
		&b.FinalAmount, &b.Status, &b.PaymentMethod, &b.PaymentAmounts.Cash,
		&b.PaymentAmounts.Online, &b.CreatedAt, &b.PaidAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetBill retrieves a bill with its order references.
func (s *SQLiteStore) GetBill(ctx context.Context, id string) (*models.Bill, error) {
	b, err := scanBill(s.db.QueryRowContext(ctx,
		"SELECT "+billColumns+" FROM bills WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if err := s.loadBillOrders(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetUnpaidBillByTable returns the table's single Unpaid bill.
func (s *SQLiteStore) GetUnpaidBillByTable(ctx context.Context, tableID string) (*models.Bill, error) {
	b, err := scanBill(s.db.QueryRowContext(ctx,
		"SELECT "+billColumns+" FROM bills WHERE table_id = ? AND status = ?",
		tableID, models.BillUnpaid))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unpaid bill for table %s: %w", tableID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unpaid bill: %w", err)
	}
	if err := s.loadBillOrders(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBillByOrder returns the bill that references the given order.
func (s *SQLiteStore) GetBillByOrder(ctx context.Context, orderID string) (*models.Bill, error) {
	b, err := scanBill(s.db.QueryRowContext(ctx,
		`SELECT `+billColumns+` FROM bills
		 WHERE id = (SELECT bill_id FROM bill_orders WHERE order_id = ? LIMIT 1)`,
		orderID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill for order %s: %w", orderID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill by order: %w", err)
	}
	if err := s.loadBillOrders(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBills returns bills, newest first. An empty status means all bills.
func (s *SQLiteStore) ListBills(ctx context.Context, status models.BillStatus) ([]models.Bill, error) {
	query := "SELECT " + billColumns + " FROM bills"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for i := range bills {
		if err := s.loadBillOrders(ctx, &bills[i]); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// UpdateBillAmounts rewrites a bill's monetary fields and status.
func (s *SQLiteStore) UpdateBillAmounts(ctx context.Context, bill *models.Bill) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE bills SET total_amount = ?, discount_value = ?, final_amount = ?, status = ?
		 WHERE id = ?`,
		bill.TotalAmount, bill.DiscountValue, bill.FinalAmount, bill.Status, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bill %s: %w", bill.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) loadBillOrders(ctx context.Context, b *models.Bill) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT order_id FROM bill_orders WHERE bill_id = ? ORDER BY rowid", b.ID)
	if err != nil {
		return fmt.Errorf("failed to get bill orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan bill order: %w", err)
		}
		b.OrderIDs = append(b.OrderIDs, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate bill orders: %w", err)
	}
	return nil
}

// SaveOrderFlow writes one order mutation and its bill/table bookkeeping in a
// single transaction, so a failure mid-cascade leaves no mixed state.
func (s *SQLiteStore) SaveOrderFlow(ctx context.Context, order *models.Order, bill *models.Bill, table *models.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if order != nil {
		if err := upsertOrderTx(ctx, tx, order); err != nil {
			return err
		}
	}

	if bill != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO bills (id, table_id, table_number, total_amount, discount_value, final_amount,
			   status, payment_method, payment_cash, payment_online, created_at, paid_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   total_amount = excluded.total_amount,
			   discount_value = excluded.discount_value,
			   final_amount = excluded.final_amount,
			   status = excluded.status`,
			bill.ID, bill.TableID, bill.TableNumber, bill.TotalAmount, bill.DiscountValue,
			bill.FinalAmount, bill.Status, bill.PaymentMethod, bill.PaymentAmounts.Cash,
			bill.PaymentAmounts.Online, bill.CreatedAt, bill.PaidAt,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("unpaid bill for table %s: %w", bill.TableID, storage.ErrDuplicate)
		}
		if err != nil {
			return fmt.Errorf("failed to upsert bill: %w", err)
		}

		for _, orderID := range bill.OrderIDs {
			_, err = tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO bill_orders (bill_id, order_id) VALUES (?, ?)",
				bill.ID, orderID,
			)
			if err != nil {
				return fmt.Errorf("failed to link order to bill: %w", err)
			}
		}
	}

	if table != nil {
		_, err = tx.ExecContext(ctx,
			"UPDATE restaurant_tables SET status = ? WHERE id = ?", table.Status, table.ID)
		if err != nil {
			return fmt.Errorf("failed to update table status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// PayBill finalizes a bill: Paid status with payment details, referenced
// orders bulk-completed, table released. One transaction.
func (s *SQLiteStore) PayBill(ctx context.Context, bill *models.Bill, table *models.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if bill.PaidAt == 0 {
		bill.PaidAt = time.Now().Unix()
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE bills SET status = ?, payment_method = ?, payment_cash = ?, payment_online = ?, paid_at = ?
		 WHERE id = ? AND status = ?`,
		models.BillPaid, bill.PaymentMethod, bill.PaymentAmounts.Cash,
		bill.PaymentAmounts.Online, bill.PaidAt, bill.ID, models.BillUnpaid,
	)
	if err != nil {
		return fmt.Errorf("failed to mark bill paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check payment result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("unpaid bill %s: %w", bill.ID, storage.ErrNotFound)
	}

	// Bulk update: every referenced order completes, no per-order validation.
	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id IN
		   (SELECT order_id FROM bill_orders WHERE bill_id = ?)`,
		models.OrderCompleted, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete orders: %w", err)
	}

	if table != nil {
		_, err = tx.ExecContext(ctx,
			"UPDATE restaurant_tables SET status = ? WHERE id = ?",
			models.TableAvailable, table.ID)
		if err != nil {
			return fmt.Errorf("failed to release table: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	bill.Status = models.BillPaid
	return nil
}

// MoveTable re-points the given orders and bills to the destination table and
// flips both table statuses. One transaction, so a failed move is a no-op.
func (s *SQLiteStore) MoveTable(ctx context.Context, fromTableID, toTableID string, toNumber int, orderIDs, billIDs []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range orderIDs {
		_, err = tx.ExecContext(ctx,
			"UPDATE orders SET table_id = ? WHERE id = ?", toTableID, id)
		if err != nil {
			return fmt.Errorf("failed to move order %s: %w", id, err)
		}
	}

	for _, id := range billIDs {
		_, err = tx.ExecContext(ctx,
			"UPDATE bills SET table_id = ?, table_number = ? WHERE id = ?",
			toTableID, toNumber, id)
		if err != nil {
			return fmt.Errorf("failed to move bill %s: %w", id, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE restaurant_tables SET status = ? WHERE id = ?",
		models.TableAvailable, fromTableID)
	if err != nil {
		return fmt.Errorf("failed to release source table: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"UPDATE restaurant_tables SET status = ? WHERE id = ?",
		models.TableOccupied, toTableID)
	if err != nil {
		return fmt.Errorf("failed to occupy target table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
