package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/notify"
	"github.com/dinewise/pos/internal/storage"
)

// OrderService is the order ledger: it accumulates line items on the single
// open order per table, keeps Order.Price equal to the sum of non-cancelled
// line totals, and mirrors every change into the table's unpaid bill and the
// table's occupancy, atomically.
type OrderService struct {
	store    storage.Store
	notifier notify.Notifier
}

// NewOrderService creates an OrderService backed by the given store.
// Events are published through the injected notifier.
func NewOrderService(store storage.Store, notifier notify.Notifier) *OrderService {
	return &OrderService{store: store, notifier: notifier}
}

// AddItemParams describes one line to add. Exactly one of TableID (Dine-In)
// or CustomerName (Takeaway) must identify the ticket; OrderID optionally
// appends to an existing takeaway order.
type AddItemParams struct {
	TableID             string
	CustomerName        string
	OrderID             string
	MenuItemID          string
	Quantity            int
	FoodType            string
	SpecialInstructions string
}

// AddItem snapshots the menu item's current price into a new line on the
// ticket, finds-or-creates the open order and unpaid bill, bumps both totals
// by price×quantity and occupies the table. All writes land in one
// transaction.
func (s *OrderService) AddItem(ctx context.Context, p AddItemParams) (*models.Order, error) {
	if p.MenuItemID == "" {
		return nil, invalidf("menu item id is required")
	}
	if p.Quantity < 1 {
		return nil, invalidf("quantity must be at least 1")
	}
	if p.TableID == "" && p.CustomerName == "" && p.OrderID == "" {
		return nil, invalidf("a table (Dine-In) or customer name (Takeaway) is required")
	}

	menuItem, err := s.store.GetMenuItem(ctx, p.MenuItemID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	foodType := p.FoodType
	if foodType == "" {
		foodType = menuItem.FoodType
	}
	line := models.OrderItem{
		ID:                  uuid.New().String(),
		MenuItemID:          menuItem.ID,
		Name:                menuItem.Name,
		Price:               menuItem.Price, // snapshot: later menu edits don't touch this line
		Quantity:            p.Quantity,
		FoodType:            foodType,
		SpecialInstructions: p.SpecialInstructions,
	}

	if p.TableID != "" {
		return s.addDineInItem(ctx, p.TableID, line)
	}
	return s.addTakeawayItem(ctx, p, line)
}

func (s *OrderService) addDineInItem(ctx context.Context, tableID string, line models.OrderItem) (*models.Order, error) {
	table, err := s.store.GetTable(ctx, tableID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	created := false
	order, err := s.store.GetPendingOrderByTable(ctx, tableID)
	if isNotFound(err) {
		created = true
		order = &models.Order{
			ID:        uuid.New().String(),
			TableID:   tableID,
			OrderType: models.OrderDineIn,
			Status:    models.OrderPending,
			CreatedAt: time.Now().Unix(),
		}
	} else if err != nil {
		return nil, mapStoreErr(err)
	}

	order.Items = append(order.Items, line)
	order.Price += line.LineTotal()

	bill, err := s.store.GetUnpaidBillByTable(ctx, tableID)
	if isNotFound(err) {
		bill = &models.Bill{
			ID:          uuid.New().String(),
			TableID:     tableID,
			TableNumber: table.Number,
			Status:      models.BillUnpaid,
			CreatedAt:   time.Now().Unix(),
		}
	} else if err != nil {
		return nil, mapStoreErr(err)
	}

	if !bill.HasOrder(order.ID) {
		bill.OrderIDs = append(bill.OrderIDs, order.ID)
	}
	bill.TotalAmount += line.LineTotal()
	bill.FinalAmount = bill.TotalAmount - bill.DiscountValue

	table.Status = models.TableOccupied

	if err := s.store.SaveOrderFlow(ctx, order, bill, table); err != nil {
		return nil, mapStoreErr(err)
	}

	if created {
		s.notifier.Publish(notify.EventOrderCreated, order)
	}
	slog.Info("item added",
		"order_id", order.ID, "table", table.Number,
		"item", line.Name, "qty", line.Quantity, "order_price", order.Price)
	return order, nil
}

func (s *OrderService) addTakeawayItem(ctx context.Context, p AddItemParams, line models.OrderItem) (*models.Order, error) {
	var order *models.Order
	var bill *models.Bill
	created := false

	if p.OrderID != "" {
		var err error
		order, err = s.store.GetOrder(ctx, p.OrderID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		if order.Status != models.OrderPending {
			return nil, conflictf("order %s is not open", order.ID)
		}
		bill, err = s.store.GetBillByOrder(ctx, order.ID)
		if err != nil && !isNotFound(err) {
			return nil, mapStoreErr(err)
		}
	} else {
		created = true
		order = &models.Order{
			ID:           uuid.New().String(),
			CustomerName: p.CustomerName,
			OrderType:    models.OrderTakeaway,
			Status:       models.OrderPending,
			CreatedAt:    time.Now().Unix(),
		}
	}

	if bill == nil {
		bill = &models.Bill{
			ID:        uuid.New().String(),
			Status:    models.BillUnpaid,
			CreatedAt: time.Now().Unix(),
		}
	}

	order.Items = append(order.Items, line)
	order.Price += line.LineTotal()
	if !bill.HasOrder(order.ID) {
		bill.OrderIDs = append(bill.OrderIDs, order.ID)
	}
	bill.TotalAmount += line.LineTotal()
	bill.FinalAmount = bill.TotalAmount - bill.DiscountValue

	if err := s.store.SaveOrderFlow(ctx, order, bill, nil); err != nil {
		return nil, mapStoreErr(err)
	}

	if created {
		s.notifier.Publish(notify.EventOrderCreated, order)
	}
	slog.Info("takeaway item added",
		"order_id", order.ID, "customer", order.CustomerName,
		"item", line.Name, "qty", line.Quantity, "order_price", order.Price)
	return order, nil
}

// CancelItem flags a line as cancelled (the line survives for ticket
// history), removes its total from the order and the bill, and cascades:
// all lines cancelled ⇒ order Canceled; every bill order fully cancelled ⇒
// bill Canceled and the table released.
func (s *OrderService) CancelItem(ctx context.Context, orderID, itemID string) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	line := findItem(order, itemID)
	if line == nil {
		return nil, notFoundf("item %s not on order %s", itemID, orderID)
	}
	if line.IsCancelled {
		return nil, conflictf("item %s is already cancelled", itemID)
	}

	lineTotal := line.LineTotal()
	line.IsCancelled = true
	order.Price -= lineTotal
	if order.Price < 0 {
		order.Price = 0
	}
	if order.AllItemsCancelled() {
		order.Status = models.OrderCanceled
	}

	bill, table, err := s.reduceBill(ctx, order, lineTotal)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveOrderFlow(ctx, order, bill, table); err != nil {
		return nil, mapStoreErr(err)
	}

	s.notifier.Publish(notify.EventItemCancelled, map[string]any{
		"order_id": order.ID, "item_id": itemID,
	})
	slog.Info("item cancelled",
		"order_id", order.ID, "item_id", itemID,
		"order_price", order.Price, "order_status", order.Status)
	return order, nil
}

// UpdateQuantity changes a line's quantity, adjusting the order and bill by
// the price delta. A quantity of zero is exactly a cancellation.
func (s *OrderService) UpdateQuantity(ctx context.Context, orderID, itemID string, quantity int) (*models.Order, error) {
	if quantity < 0 {
		return nil, invalidf("quantity cannot be negative")
	}
	if quantity == 0 {
		return s.CancelItem(ctx, orderID, itemID)
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	line := findItem(order, itemID)
	if line == nil {
		return nil, notFoundf("item %s not on order %s", itemID, orderID)
	}
	if line.IsCancelled {
		return nil, conflictf("item %s is cancelled", itemID)
	}

	delta := line.Price * float64(quantity-line.Quantity)
	line.Quantity = quantity
	order.Price += delta
	if order.Price < 0 {
		order.Price = 0
	}

	bill, table, err := s.reduceBill(ctx, order, -delta)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveOrderFlow(ctx, order, bill, table); err != nil {
		return nil, mapStoreErr(err)
	}
	slog.Info("quantity updated",
		"order_id", order.ID, "item_id", itemID, "quantity", quantity,
		"order_price", order.Price)
	return order, nil
}

// reduceBill subtracts reduction from the order's bill total (clamped at
// zero) and cancels the bill — releasing its table — once every referenced
// order is fully cancelled. Returns the mutated bill and table for the
// caller's SaveOrderFlow; both nil when the order has no open bill.
func (s *OrderService) reduceBill(ctx context.Context, order *models.Order, reduction float64) (*models.Bill, *models.Table, error) {
	var bill *models.Bill
	var err error
	if order.TableID != "" {
		bill, err = s.store.GetUnpaidBillByTable(ctx, order.TableID)
	} else {
		bill, err = s.store.GetBillByOrder(ctx, order.ID)
	}
	if isNotFound(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, mapStoreErr(err)
	}
	if bill.Status != models.BillUnpaid {
		return nil, nil, nil
	}

	bill.TotalAmount -= reduction
	if bill.TotalAmount < 0 {
		bill.TotalAmount = 0
	}
	if bill.DiscountValue > bill.TotalAmount {
		bill.DiscountValue = bill.TotalAmount
	}
	bill.FinalAmount = bill.TotalAmount - bill.DiscountValue

	cancelled, err := s.allBillOrdersCancelled(ctx, order, bill)
	if err != nil {
		return nil, nil, err
	}

	var table *models.Table
	if cancelled {
		bill.Status = models.BillCanceled
		if bill.TableID != "" {
			table, err = s.store.GetTable(ctx, bill.TableID)
			if err != nil {
				return nil, nil, mapStoreErr(err)
			}
			table.Status = models.TableAvailable
		}
	}
	return bill, table, nil
}

// allBillOrdersCancelled reports whether every order on the bill has all of
// its items cancelled. current is consulted in memory since its mutation has
// not been persisted yet.
func (s *OrderService) allBillOrdersCancelled(ctx context.Context, current *models.Order, bill *models.Bill) (bool, error) {
	for _, id := range bill.OrderIDs {
		o := current
		if id != current.ID {
			var err error
			o, err = s.store.GetOrder(ctx, id)
			if err != nil {
				return false, mapStoreErr(err)
			}
		}
		if !o.AllItemsCancelled() {
			return false, nil
		}
	}
	return len(bill.OrderIDs) > 0, nil
}

// SetStatus moves an order to a new kitchen status. Only the value is
// validated; any known status may follow any other.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, invalidf("unknown order status %q", status)
	}
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.store.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, mapStoreErr(err)
	}
	order.Status = status

	s.notifier.Publish(notify.EventOrderStatus, map[string]any{
		"order_id": order.ID, "status": status,
	})
	slog.Info("order status updated", "order_id", order.ID, "status", status)
	return order, nil
}

// Get returns one order with its items.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return order, nil
}

// List returns orders matching the filter, newest first.
func (s *OrderService) List(ctx context.Context, f storage.OrderFilter) ([]models.Order, error) {
	orders, err := s.store.ListOrders(ctx, f)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return orders, nil
}

func findItem(order *models.Order, itemID string) *models.OrderItem {
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			return &order.Items[i]
		}
	}
	return nil
}
