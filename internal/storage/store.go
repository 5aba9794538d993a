// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/dinewise/pos/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint
// (duplicate email, second Pending order or Unpaid bill for a table).
var ErrDuplicate = errors.New("duplicate")

// OrderFilter narrows ListOrders. Zero values mean "any".
type OrderFilter struct {
	Status    models.OrderStatus
	TableID   string
	OrderType models.OrderType
}

// OrderStats is the order-count aggregate for a reporting window.
type OrderStats struct {
	Total     int
	Completed int
}

// Store defines the interface for POS storage operations. This abstraction
// allows swapping storage backends without changing the service layer.
//
// The composite operations (SaveOrderFlow, PayBill, MoveTable, CreateTable)
// are transactional: either every write inside them lands or none does.
type Store interface {
	// Tables

	// CreateTable persists a new table, assigning the lowest unused positive
	// number inside the same transaction (gap reuse).
	CreateTable(ctx context.Context, table *models.Table) error
	GetTable(ctx context.Context, id string) (*models.Table, error)
	ListTables(ctx context.Context) ([]models.Table, error)
	UpdateTableStatus(ctx context.Context, id string, status models.TableStatus) error
	DeleteTable(ctx context.Context, id string) error

	// Menu

	CreateCategory(ctx context.Context, c *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	RenameCategory(ctx context.Context, id, name string) error
	DeleteCategory(ctx context.Context, id string) error
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error

	// Orders

	GetOrder(ctx context.Context, id string) (*models.Order, error)
	// GetPendingOrderByTable returns the table's single Pending order, or
	// ErrNotFound if the table has none.
	GetPendingOrderByTable(ctx context.Context, tableID string) (*models.Order, error)
	ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error

	// Bills

	GetBill(ctx context.Context, id string) (*models.Bill, error)
	// GetUnpaidBillByTable returns the table's single Unpaid bill, or
	// ErrNotFound if the table has none.
	GetUnpaidBillByTable(ctx context.Context, tableID string) (*models.Bill, error)
	// GetBillByOrder returns the bill referencing the given order, or
	// ErrNotFound. Used by takeaway flows, where no table keys the bill.
	GetBillByOrder(ctx context.Context, orderID string) (*models.Bill, error)
	ListBills(ctx context.Context, status models.BillStatus) ([]models.Bill, error)
	// UpdateBillAmounts rewrites a bill's total, discount, final amount and
	// status in place.
	UpdateBillAmounts(ctx context.Context, bill *models.Bill) error

	// Composite, transactional

	// SaveOrderFlow upserts an order (with its items), a bill (with its order
	// references) and a table status in one transaction. Nil arguments are
	// skipped, so takeaway flows pass a nil table.
	SaveOrderFlow(ctx context.Context, order *models.Order, bill *models.Bill, table *models.Table) error

	// PayBill marks the bill paid, bulk-completes every referenced order and
	// releases the table (nil for takeaway), in one transaction.
	PayBill(ctx context.Context, bill *models.Bill, table *models.Table) error

	// MoveTable re-points the given orders and bills from one table to
	// another, rewrites the bills' denormalized table number and flips both
	// table statuses, in one transaction.
	MoveTable(ctx context.Context, fromTableID, toTableID string, toNumber int, orderIDs, billIDs []string) error

	// Users

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Analytics (all windows are [from, to) over Unix timestamps)

	// PaidBillsBetween returns Paid bills whose payment time falls in the window.
	PaidBillsBetween(ctx context.Context, from, to int64) ([]models.Bill, error)
	// OrderStatsBetween counts orders created in the window.
	OrderStatsBetween(ctx context.Context, from, to int64) (OrderStats, error)
	// ActiveOrderRefsBetween counts order references inside Unpaid bills
	// created in the window.
	ActiveOrderRefsBetween(ctx context.Context, from, to int64) (int, error)
	// TopItemsBetween ranks items by summed non-cancelled quantity over
	// orders created in the window. Ties keep first-seen order.
	TopItemsBetween(ctx context.Context, from, to int64, limit int) ([]models.TopItem, error)

	// Close releases any resources held by the store.
	Close() error
}
