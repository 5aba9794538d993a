package sqlite

import (
	"context"
	"fmt"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

// PaidBillsBetween returns Paid bills with paid_at in [from, to).
func (s *SQLiteStore) PaidBillsBetween(ctx context.Context, from, to int64) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+billColumns+" FROM bills WHERE status = ? AND paid_at >= ? AND paid_at < ? ORDER BY paid_at",
		models.BillPaid, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query paid bills: %w", err)
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
		return nil, fmt.Errorf("failed to iterate paid bills: %w", err)
	}
	return bills, nil
}

// OrderStatsBetween counts orders created in [from, to), total and completed.
func (s *SQLiteStore) OrderStatsBetween(ctx context.Context, from, to int64) (storage.OrderStats, error) {
	var stats storage.OrderStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		 FROM orders WHERE created_at >= ? AND created_at < ?`,
		models.OrderCompleted, from, to,
	).Scan(&stats.Total, &stats.Completed)
	if err != nil {
		return stats, fmt.Errorf("failed to count orders: %w", err)
	}
	return stats, nil
}

// ActiveOrderRefsBetween counts order references held by Unpaid bills
// created in [from, to).
func (s *SQLiteStore) ActiveOrderRefsBetween(ctx context.Context, from, to int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM bill_orders bo
		 JOIN bills b ON b.id = bo.bill_id
		 WHERE b.status = ? AND b.created_at >= ? AND b.created_at < ?`,
		models.BillUnpaid, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active order refs: %w", err)
	}
	return count, nil
}

// TopItemsBetween ranks line items by summed non-cancelled quantity over
// orders created in [from, to). Ties keep the aggregation's first-seen
// order (MIN(rowid)).
func (s *SQLiteStore) TopItemsBetween(ctx context.Context, from, to int64, limit int) ([]models.TopItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT oi.name, SUM(oi.quantity) AS qty
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE oi.is_cancelled = 0 AND o.created_at >= ? AND o.created_at < ?
		 GROUP BY oi.name
		 ORDER BY qty DESC, MIN(oi.rowid)
		 LIMIT ?`,
		from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top items: %w", err)
	}
	defer rows.Close()

	var items []models.TopItem
	for rows.Next() {
		var it models.TopItem
		if err := rows.Scan(&it.Name, &it.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan top item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top items: %w", err)
	}
	return items, nil
}
