package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dinewise/pos/internal/models"
)

func TestDailySummary(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	bills := newBillService(store)
	analytics := NewAnalyticsService(store)
	menuItem := seedMenuItem(t, store, "Dosa", 100)
	ctx := context.Background()

	// One settled party, one still eating.
	paidTable := createTable(t, store)
	_, bill := openBill(t, store, orders, paidTable.ID, menuItem.ID, 2)
	if _, err := bills.Pay(ctx, bill.ID, PayParams{Method: models.PayCash}); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}

	activeTable := createTable(t, store)
	openBill(t, store, orders, activeTable.ID, menuItem.ID, 1)

	summary, err := analytics.DailySummary(ctx)
	if err != nil {
		t.Fatalf("DailySummary failed: %v", err)
	}

	if summary.Revenue != "200.00" {
		t.Errorf("revenue = %s, want 200.00", summary.Revenue)
	}
	if summary.PaymentBreakdown.Cash != "200.00" {
		t.Errorf("cash = %s, want 200.00", summary.PaymentBreakdown.Cash)
	}
	if summary.OrderCount != 2 {
		t.Errorf("order count = %d, want 2", summary.OrderCount)
	}
	if summary.CompletedCount != 1 {
		t.Errorf("completed count = %d, want 1", summary.CompletedCount)
	}
	if summary.ActiveOrders != 1 {
		t.Errorf("active orders = %d, want 1", summary.ActiveOrders)
	}
	if summary.CompletionRate != "50.00%" {
		t.Errorf("completion rate = %s, want 50.00%%", summary.CompletionRate)
	}
	if summary.AvgOrderValue != "100.00" {
		t.Errorf("avg order value = %s, want 100.00", summary.AvgOrderValue)
	}
}

func TestPeriodSummary(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	bills := newBillService(store)
	analytics := NewAnalyticsService(store)
	menuItem := seedMenuItem(t, store, "Idli", 40)
	ctx := context.Background()

	table := createTable(t, store)
	_, bill := openBill(t, store, orders, table.ID, menuItem.ID, 3)
	if _, err := bills.Pay(ctx, bill.ID, PayParams{Method: models.PayOnline}); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}

	now := time.Now()
	summary, err := analytics.PeriodSummary(ctx, now.Month().String(), now.Year())
	if err != nil {
		t.Fatalf("PeriodSummary failed: %v", err)
	}

	if summary.Revenue != "120.00" {
		t.Errorf("revenue = %s, want 120.00", summary.Revenue)
	}
	wantPeriod := now.Month().String() + " " + now.Format("2006")
	if summary.Period != wantPeriod {
		t.Errorf("period = %s, want %s", summary.Period, wantPeriod)
	}
	if len(summary.TopItems) != 1 {
		t.Fatalf("top items = %d, want 1", len(summary.TopItems))
	}
	if summary.TopItems[0].Name != "Idli" || summary.TopItems[0].Quantity != 3 {
		t.Errorf("top item = %+v, want Idli x3", summary.TopItems[0])
	}

	// Year-only window covers the same sale.
	yearly, err := analytics.PeriodSummary(ctx, "", now.Year())
	if err != nil {
		t.Fatalf("PeriodSummary(year) failed: %v", err)
	}
	if yearly.Revenue != "120.00" {
		t.Errorf("yearly revenue = %s, want 120.00", yearly.Revenue)
	}
	if yearly.Period != now.Format("2006") {
		t.Errorf("yearly period = %s, want %s", yearly.Period, now.Format("2006"))
	}
}

func TestPeriodSummaryValidation(t *testing.T) {
	store := newTestStore(t)
	analytics := NewAnalyticsService(store)
	ctx := context.Background()

	if _, err := analytics.PeriodSummary(ctx, "", 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty period error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := analytics.PeriodSummary(ctx, "Janvember", 2026); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad month error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestCancelledItemsExcludedFromTopItems(t *testing.T) {
	store := newTestStore(t)
	orders := newOrderService(store)
	bills := newBillService(store)
	analytics := NewAnalyticsService(store)
	dosa := seedMenuItem(t, store, "Dosa", 100)
	ctx := context.Background()

	table := createTable(t, store)
	order, err := orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: dosa.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	order, err = orders.AddItem(ctx, AddItemParams{TableID: table.ID, MenuItemID: dosa.ID, Quantity: 5})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := orders.CancelItem(ctx, order.ID, order.Items[1].ID); err != nil {
		t.Fatalf("CancelItem failed: %v", err)
	}

	bill := mustGetUnpaidBill(t, store, table.ID)
	if _, err := bills.Pay(ctx, bill.ID, PayParams{Method: models.PayCash}); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}

	now := time.Now()
	summary, err := analytics.PeriodSummary(ctx, now.Month().String(), now.Year())
	if err != nil {
		t.Fatalf("PeriodSummary failed: %v", err)
	}
	if len(summary.TopItems) != 1 || summary.TopItems[0].Quantity != 2 {
		t.Errorf("top items = %+v, want Dosa x2 only", summary.TopItems)
	}
}
