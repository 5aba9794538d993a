package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/notify"
	"github.com/dinewise/pos/internal/storage"
	"github.com/dinewise/pos/internal/storage/sqlite"
)

// newTestStore creates a throwaway sqlite store in a temp directory.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedMenuItem creates a category holding one item at the given price.
func seedMenuItem(t *testing.T, store storage.Store, name string, price float64) *models.MenuItem {
	t.Helper()
	ctx := context.Background()

	category := &models.Category{Name: "Test Menu"}
	if err := store.CreateCategory(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	item := &models.MenuItem{CategoryID: category.ID, Name: name, Price: price, FoodType: "veg"}
	if err := store.CreateMenuItem(ctx, item); err != nil {
		t.Fatalf("failed to create menu item: %v", err)
	}
	return item
}

// createTable creates one table through the registry.
func createTable(t *testing.T, store storage.Store) *models.Table {
	t.Helper()
	table, err := NewTableService(store).Create(context.Background())
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return table
}

// mustGetTable reloads a table.
func mustGetTable(t *testing.T, store storage.Store, id string) *models.Table {
	t.Helper()
	table, err := store.GetTable(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to get table: %v", err)
	}
	return table
}

// mustGetUnpaidBill reloads the table's open bill.
func mustGetUnpaidBill(t *testing.T, store storage.Store, tableID string) *models.Bill {
	t.Helper()
	bill, err := store.GetUnpaidBillByTable(context.Background(), tableID)
	if err != nil {
		t.Fatalf("failed to get unpaid bill: %v", err)
	}
	return bill
}

func newOrderService(store storage.Store) *OrderService {
	return NewOrderService(store, notify.Noop{})
}

func newBillService(store storage.Store) *BillService {
	return NewBillService(store, notify.Noop{})
}
