package models

// BillStatus is the payment lifecycle state of a bill.
type BillStatus string

const (
	BillUnpaid   BillStatus = "Unpaid"
	BillPaid     BillStatus = "Paid"
	BillCanceled BillStatus = "Canceled"
)

// PaymentMethod is how a bill was settled.
type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayOnline PaymentMethod = "online"
	PaySplit  PaymentMethod = "split"
)

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PayCash || m == PayOnline || m == PaySplit
}

// PaymentAmounts records how a split payment was divided.
type PaymentAmounts struct {
	Cash   float64 `json:"cash"`
	Online float64 `json:"online"`
}

// Bill is the payable aggregate for one table occupancy (or one takeaway
// order). At most one Unpaid bill exists per table at a time; the storage
// layer backs this with a partial unique index.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// TableID references the table; empty for takeaway bills.
	TableID string `json:"table_id,omitempty"`

	// TableNumber is a display snapshot of the table number, rewritten on
	// table moves.
	TableNumber int `json:"table_number,omitempty"`

	// OrderIDs lists the orders aggregated into this bill.
	OrderIDs []string `json:"order_ids"`

	// TotalAmount mirrors the sum of the referenced orders' active totals
	// until the bill is Paid. Never negative.
	TotalAmount float64 `json:"total_amount"`

	// DiscountValue is the applied discount. Never negative, never greater
	// than TotalAmount.
	DiscountValue float64 `json:"discount_value"`

	// FinalAmount is TotalAmount − DiscountValue.
	FinalAmount float64 `json:"final_amount"`

	// Status is the payment lifecycle state.
	Status BillStatus `json:"status"`

	// PaymentMethod is set when the bill is paid.
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`

	// PaymentAmounts records the cash/online breakdown for split payments.
	PaymentAmounts PaymentAmounts `json:"payment_amounts"`

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64 `json:"created_at"`

	// PaidAt is the Unix timestamp of payment, 0 while unpaid.
	PaidAt int64 `json:"paid_at,omitempty"`
}

// HasOrder reports whether the bill already references the given order.
func (b *Bill) HasOrder(orderID string) bool {
	for _, id := range b.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}
