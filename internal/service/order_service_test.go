package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dinewise/pos/internal/models"
)

func TestAddItemCreatesOrderBillAndOccupiesTable(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Paneer Tikka", 100)
	table := createTable(t, store)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{
		TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if order.Price != 200 {
		t.Errorf("order price = %v, want 200", order.Price)
	}
	if order.Status != models.OrderPending {
		t.Errorf("order status = %s, want Pending", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].Price != 100 {
		t.Errorf("expected one line with snapshot price 100, got %+v", order.Items)
	}

	bill := mustGetUnpaidBill(t, store, table.ID)
	if bill.TotalAmount != 200 {
		t.Errorf("bill total = %v, want 200", bill.TotalAmount)
	}
	if !bill.HasOrder(order.ID) {
		t.Error("expected bill to reference the order")
	}
	if bill.TableNumber != table.Number {
		t.Errorf("bill table number = %d, want %d", bill.TableNumber, table.Number)
	}

	if got := mustGetTable(t, store, table.ID); got.Status != models.TableOccupied {
		t.Errorf("table status = %s, want Occupied", got.Status)
	}
}

func TestAddItemReusesOpenOrderAndBill(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Masala Dosa", 80)
	table := createTable(t, store)
	ctx := context.Background()

	first, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("first AddItem failed: %v", err)
	}
	second, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second AddItem failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected both adds to land on the same open order")
	}
	if second.Price != 320 {
		t.Errorf("order price = %v, want 320", second.Price)
	}
	if len(second.Items) != 2 {
		t.Errorf("expected 2 lines, got %d", len(second.Items))
	}

	bill := mustGetUnpaidBill(t, store, table.ID)
	if bill.TotalAmount != 320 {
		t.Errorf("bill total = %v, want 320", bill.TotalAmount)
	}
	if len(bill.OrderIDs) != 1 {
		t.Errorf("expected bill to reference 1 order, got %d", len(bill.OrderIDs))
	}
}

func TestAddItemPriceIsSnapshot(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menu := NewMenuService(store)
	menuItem := seedMenuItem(t, store, "Lassi", 50)
	table := createTable(t, store)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	// Reprice the menu item; the existing line must keep its snapshot.
	if _, err := menu.UpdateItem(ctx, menuItem.ID, AddMenuItemParams{Name: "Lassi", Price: 75}); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}

	reloaded, err := orders.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reloaded.Items[0].Price != 50 {
		t.Errorf("line price = %v, want snapshot 50", reloaded.Items[0].Price)
	}
	if reloaded.Price != 50 {
		t.Errorf("order price = %v, want 50", reloaded.Price)
	}
}

func TestAddItemValidation(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Chai", 20)
	table := createTable(t, store)
	ctx := context.Background()

	tests := []struct {
		name    string
		params  AddItemParams
		wantErr error
	}{
		{
			name:    "zero quantity",
			params:  AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing ticket target",
			params:  AddItemParams{MenuItemID: menuItem.ID, Quantity: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown menu item",
			params:  AddItemParams{TableID: table.ID, MenuItemID: "nope", Quantity: 1},
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown table",
			params:  AddItemParams{TableID: "nope", MenuItemID: menuItem.ID, Quantity: 1},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := orders.AddItem(ctx, tt.params); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCancelLastItemCancelsOrderBillAndReleasesTable(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Thali", 100)
	table := createTable(t, store)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	cancelled, err := orders.CancelItem(ctx, order.ID, order.Items[0].ID)
	if err != nil {
		t.Fatalf("CancelItem failed: %v", err)
	}

	if cancelled.Price != 0 {
		t.Errorf("order price = %v, want 0", cancelled.Price)
	}
	if cancelled.Status != models.OrderCanceled {
		t.Errorf("order status = %s, want Canceled", cancelled.Status)
	}
	if !cancelled.Items[0].IsCancelled {
		t.Error("expected line to be flagged cancelled, not deleted")
	}

	bill, err := store.GetBill(ctx, mustBillID(t, store, order.ID))
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if bill.TotalAmount != 0 {
		t.Errorf("bill total = %v, want 0", bill.TotalAmount)
	}
	if bill.Status != models.BillCanceled {
		t.Errorf("bill status = %s, want Canceled", bill.Status)
	}

	if got := mustGetTable(t, store, table.ID); got.Status != models.TableAvailable {
		t.Errorf("table status = %s, want Available", got.Status)
	}
}

func TestCancelItemKeepsRemainingLines(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Biryani", 150)
	table := createTable(t, store)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	order, err = orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	order, err = orders.CancelItem(ctx, order.ID, order.Items[1].ID)
	if err != nil {
		t.Fatalf("CancelItem failed: %v", err)
	}

	if order.Price != 150 {
		t.Errorf("order price = %v, want 150", order.Price)
	}
	if order.Status != models.OrderPending {
		t.Errorf("order status = %s, want Pending", order.Status)
	}
	if got := order.ActiveTotal(); got != order.Price {
		t.Errorf("derived total %v != stored price %v", got, order.Price)
	}

	bill := mustGetUnpaidBill(t, store, table.ID)
	if bill.TotalAmount != 150 {
		t.Errorf("bill total = %v, want 150", bill.TotalAmount)
	}

	// Second cancel of the same line is a conflict, no state change.
	if _, err := orders.CancelItem(ctx, order.ID, order.Items[1].ID); !errors.Is(err, ErrConflict) {
		t.Errorf("second cancel error = %v, want %v", err, ErrConflict)
	}
	if got := mustGetUnpaidBill(t, store, table.ID); got.TotalAmount != 150 {
		t.Errorf("bill total after rejected cancel = %v, want 150", got.TotalAmount)
	}
}

func TestUpdateQuantity(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Naan", 30)
	table := createTable(t, store)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	itemID := order.Items[0].ID

	order, err = orders.UpdateQuantity(ctx, order.ID, itemID, 5)
	if err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if order.Price != 150 {
		t.Errorf("order price = %v, want 150", order.Price)
	}
	if bill := mustGetUnpaidBill(t, store, table.ID); bill.TotalAmount != 150 {
		t.Errorf("bill total = %v, want 150", bill.TotalAmount)
	}

	order, err = orders.UpdateQuantity(ctx, order.ID, itemID, 1)
	if err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if order.Price != 30 {
		t.Errorf("order price = %v, want 30", order.Price)
	}

	if _, err := orders.UpdateQuantity(ctx, order.ID, itemID, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative quantity error = %v, want %v", err, ErrInvalidInput)
	}

	// Quantity zero is exactly a cancellation.
	order, err = orders.UpdateQuantity(ctx, order.ID, itemID, 0)
	if err != nil {
		t.Fatalf("UpdateQuantity(0) failed: %v", err)
	}
	if order.Price != 0 || order.Status != models.OrderCanceled {
		t.Errorf("after qty 0: price = %v status = %s, want 0/Canceled", order.Price, order.Status)
	}
}

func TestSetStatus(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Samosa", 15)
	table := createTable(t, store)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: menuItem.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	for _, status := range []models.OrderStatus{
		models.OrderPreparing, models.OrderReady, models.OrderCompleted, models.OrderPending,
	} {
		if _, err := orders.SetStatus(ctx, order.ID, status); err != nil {
			t.Fatalf("SetStatus(%s) failed: %v", status, err)
		}
	}

	if _, err := orders.SetStatus(ctx, order.ID, "Burnt"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown status error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := orders.SetStatus(ctx, "nope", models.OrderReady); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown order error = %v, want %v", err, ErrNotFound)
	}
}

func TestTakeawayOrderFlow(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	menuItem := seedMenuItem(t, store, "Rolls", 60)
	ctx := context.Background()

	order, err := orders.AddItem(ctx, AddItemParams{
		CustomerName: "Asha", MenuItemID: menuItem.ID, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if order.OrderType != models.OrderTakeaway {
		t.Errorf("order type = %s, want Takeaway", order.OrderType)
	}
	if order.TableID != "" {
		t.Errorf("takeaway order should not reference a table")
	}

	// Appending via OrderID lands on the same ticket and bill.
	order, err = orders.AddItem(ctx, AddItemParams{
		OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 1,
	})
	if err != nil {
		t.Fatalf("append AddItem failed: %v", err)
	}
	if order.Price != 180 {
		t.Errorf("order price = %v, want 180", order.Price)
	}

	bill, err := store.GetBillByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetBillByOrder failed: %v", err)
	}
	if bill.TotalAmount != 180 {
		t.Errorf("bill total = %v, want 180", bill.TotalAmount)
	}
	if bill.TableID != "" {
		t.Errorf("takeaway bill should not reference a table")
	}
}

// mustBillID resolves the bill referencing an order.
func mustBillID(t *testing.T, store interface {
	GetBillByOrder(ctx context.Context, orderID string) (*models.Bill, error)
}, orderID string) string {
	t.Helper()
	bill, err := store.GetBillByOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("failed to resolve bill for order: %v", err)
	}
	return bill.ID
}
