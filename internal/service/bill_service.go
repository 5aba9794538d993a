package service

import (
	"context"
	"log/slog"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/notify"
	"github.com/dinewise/pos/internal/storage"
)

// BillService is the bill aggregator: discounts, payment finalization with
// its order/table cascade, and table moves.
type BillService struct {
	store    storage.Store
	notifier notify.Notifier
}

// NewBillService creates a BillService backed by the given store.
func NewBillService(store storage.Store, notifier notify.Notifier) *BillService {
	return &BillService{store: store, notifier: notifier}
}

// moveActiveOrderStatuses lists the order states that follow a party to its
// new table. "Served" is produced by no writer today; it stays in the
// whitelist so kitchen flows that adopt it keep working.
var moveActiveOrderStatuses = []models.OrderStatus{
	models.OrderPending,
	models.OrderPreparing,
	models.OrderReady,
	"Served",
}

// Get returns one bill.
func (s *BillService) Get(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return bill, nil
}

// List returns all bills, newest first.
func (s *BillService) List(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.store.ListBills(ctx, "")
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return bills, nil
}

// ListUnpaid returns open bills only.
func (s *BillService) ListUnpaid(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.store.ListBills(ctx, models.BillUnpaid)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return bills, nil
}

// ApplyDiscount sets the bill's discount and re-derives finalAmount.
// Rejected without state change when the value is negative or exceeds the
// running total, or when the bill is no longer open.
func (s *BillService) ApplyDiscount(ctx context.Context, billID string, discountValue float64) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if bill.Status != models.BillUnpaid {
		return nil, conflictf("bill %s is %s", billID, bill.Status)
	}
	if discountValue < 0 {
		return nil, invalidf("discount cannot be negative")
	}
	if discountValue > bill.TotalAmount {
		return nil, invalidf("discount %.2f exceeds bill total %.2f", discountValue, bill.TotalAmount)
	}

	bill.DiscountValue = discountValue
	bill.FinalAmount = bill.TotalAmount - discountValue
	if err := s.store.UpdateBillAmounts(ctx, bill); err != nil {
		return nil, mapStoreErr(err)
	}
	slog.Info("discount applied",
		"bill_id", bill.ID, "discount", discountValue, "final_amount", bill.FinalAmount)
	return bill, nil
}

// PayParams carries the payment request.
type PayParams struct {
	Method  models.PaymentMethod
	Amounts models.PaymentAmounts
}

// Pay finalizes a bill. Split payments must divide the total exactly;
// single-method amounts default to the total and must equal it exactly.
// On success the bill is Paid, every referenced order is bulk-completed and
// the table is released — one transaction.
func (s *BillService) Pay(ctx context.Context, billID string, p PayParams) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if bill.Status == models.BillPaid {
		return nil, conflictf("bill %s is already paid", billID)
	}
	if bill.Status == models.BillCanceled {
		return nil, conflictf("bill %s is cancelled", billID)
	}
	if bill.TotalAmount <= 0 {
		return nil, invalidf("nothing to pay on bill %s", billID)
	}
	if !models.ValidPaymentMethod(p.Method) {
		return nil, invalidf("unknown payment method %q", p.Method)
	}

	switch p.Method {
	case models.PaySplit:
		if p.Amounts.Cash < 0 || p.Amounts.Online < 0 {
			return nil, invalidf("split amounts cannot be negative")
		}
		if p.Amounts.Cash+p.Amounts.Online != bill.TotalAmount {
			return nil, invalidf("split amounts %.2f + %.2f must equal bill total %.2f",
				p.Amounts.Cash, p.Amounts.Online, bill.TotalAmount)
		}
		bill.PaymentAmounts = p.Amounts
	case models.PayCash:
		amount := p.Amounts.Cash
		if amount == 0 {
			amount = bill.TotalAmount
		}
		if amount != bill.TotalAmount {
			return nil, invalidf("cash amount %.2f must equal bill total %.2f", amount, bill.TotalAmount)
		}
		bill.PaymentAmounts = models.PaymentAmounts{Cash: amount}
	case models.PayOnline:
		amount := p.Amounts.Online
		if amount == 0 {
			amount = bill.TotalAmount
		}
		if amount != bill.TotalAmount {
			return nil, invalidf("online amount %.2f must equal bill total %.2f", amount, bill.TotalAmount)
		}
		bill.PaymentAmounts = models.PaymentAmounts{Online: amount}
	}
	bill.PaymentMethod = p.Method

	var table *models.Table
	if bill.TableID != "" {
		table, err = s.store.GetTable(ctx, bill.TableID)
		if err != nil && !isNotFound(err) {
			return nil, mapStoreErr(err)
		}
	}

	if err := s.store.PayBill(ctx, bill, table); err != nil {
		return nil, mapStoreErr(err)
	}

	s.notifier.Publish(notify.EventBillPaid, bill)
	slog.Info("bill paid",
		"bill_id", bill.ID, "method", bill.PaymentMethod,
		"total", bill.TotalAmount, "final", bill.FinalAmount)
	return bill, nil
}

// MoveTable shifts a party: every active order and the unpaid bill move from
// the source table to the destination, the bills' denormalized table number
// is rewritten, and the occupancy flags flip. The whole move is one
// transaction, so a failed move leaves every entity unchanged.
func (s *BillService) MoveTable(ctx context.Context, fromTableID, toTableID string) error {
	from, err := s.store.GetTable(ctx, fromTableID)
	if err != nil {
		return mapStoreErr(err)
	}
	to, err := s.store.GetTable(ctx, toTableID)
	if err != nil {
		return mapStoreErr(err)
	}
	if from.Status != models.TableOccupied {
		return invalidf("source table %d is not occupied", from.Number)
	}
	if to.Status != models.TableAvailable {
		return invalidf("target table %d is not available", to.Number)
	}

	var orderIDs []string
	for _, status := range moveActiveOrderStatuses {
		orders, err := s.store.ListOrders(ctx, storage.OrderFilter{TableID: fromTableID, Status: status})
		if err != nil {
			return mapStoreErr(err)
		}
		for _, o := range orders {
			orderIDs = append(orderIDs, o.ID)
		}
	}

	var billIDs []string
	bill, err := s.store.GetUnpaidBillByTable(ctx, fromTableID)
	if err != nil && !isNotFound(err) {
		return mapStoreErr(err)
	}
	if bill != nil {
		billIDs = append(billIDs, bill.ID)
	}

	if err := s.store.MoveTable(ctx, fromTableID, toTableID, to.Number, orderIDs, billIDs); err != nil {
		return mapStoreErr(err)
	}

	s.notifier.Publish(notify.EventTableMoved, map[string]any{
		"from_table": from.Number, "to_table": to.Number,
	})
	slog.Info("table moved",
		"from", from.Number, "to", to.Number,
		"orders", len(orderIDs), "bills", len(billIDs))
	return nil
}
