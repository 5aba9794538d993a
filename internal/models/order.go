package models

// OrderStatus is the kitchen-facing lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderCompleted OrderStatus = "Completed"
	OrderCanceled  OrderStatus = "Canceled"
)

// ValidOrderStatus reports whether s is a known order status.
// Transitions are whitelist-only: any known status may follow any other,
// since kitchen flows re-order statuses freely.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCanceled:
		return true
	}
	return false
}

// OrderType distinguishes table service from takeaway.
type OrderType string

const (
	OrderDineIn   OrderType = "Dine-In"
	OrderTakeaway OrderType = "Takeaway"
)

// Order is one kitchen ticket for a table or a takeaway customer.
type Order struct {
	// ID is the unique identifier for the order (UUID format).
	ID string `json:"id"`

	// TableID references the table for Dine-In orders; empty for Takeaway.
	TableID string `json:"table_id,omitempty"`

	// CustomerName identifies the customer for Takeaway orders.
	CustomerName string `json:"customer_name,omitempty"`

	// OrderType is Dine-In or Takeaway.
	OrderType OrderType `json:"order_type"`

	// Items are the line-item snapshots on this ticket. Cancelled lines are
	// kept (flagged) rather than deleted, so the ticket history survives.
	Items []OrderItem `json:"items"`

	// Status is the kitchen lifecycle state.
	Status OrderStatus `json:"status"`

	// Price is the derived sum of non-cancelled line totals. Never negative.
	Price float64 `json:"price"`

	// CreatedAt is the Unix timestamp when the order was created.
	CreatedAt int64 `json:"created_at"`
}

// OrderItem is a menu item snapshot embedded in an order.
type OrderItem struct {
	// ID is the unique identifier for the line (UUID format).
	ID string `json:"id"`

	// MenuItemID references the menu item this line was copied from.
	MenuItemID string `json:"menu_item_id"`

	// Name is the item name at add-time.
	Name string `json:"name"`

	// Price is the per-unit price snapshot taken at add-time. Never negative.
	Price float64 `json:"price"`

	// Quantity is the number of units. At least 1 for active lines.
	Quantity int `json:"quantity"`

	// FoodType classifies the item (e.g. "veg", "non-veg").
	FoodType string `json:"food_type,omitempty"`

	// SpecialInstructions carries free-text kitchen notes.
	SpecialInstructions string `json:"special_instructions,omitempty"`

	// IsCancelled excludes the line from all totals once set. Cancellation
	// is one-way.
	IsCancelled bool `json:"is_cancelled"`
}

// LineTotal returns price × quantity for this line, 0 if cancelled.
func (i OrderItem) LineTotal() float64 {
	if i.IsCancelled {
		return 0
	}
	return i.Price * float64(i.Quantity)
}

// ActiveTotal returns the sum of non-cancelled line totals.
func (o *Order) ActiveTotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.LineTotal()
	}
	return sum
}

// AllItemsCancelled reports whether every line on the order is cancelled.
// False for an empty order.
func (o *Order) AllItemsCancelled() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, it := range o.Items {
		if !it.IsCancelled {
			return false
		}
	}
	return true
}
