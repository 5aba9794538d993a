package models

// The analytics payloads below are display-oriented: monetary fields are
// 2-decimal strings and CompletionRate carries a literal "%" suffix. The
// frontend renders these values verbatim, so they are part of the API
// contract, not an internal convenience.

// PaymentBreakdown groups paid-bill revenue by payment method.
// Split payments contribute their cash and online parts separately.
type PaymentBreakdown struct {
	Cash   string `json:"cash"`
	Online string `json:"online"`
	Total  string `json:"total"`
}

// Summary is the revenue/order report for one reporting window.
type Summary struct {
	// Revenue is the sum of totalAmount over Paid bills in the window.
	Revenue string `json:"revenue"`

	// OrderCount counts orders created in the window.
	OrderCount int `json:"order_count"`

	// CompletedCount counts in-window orders that reached Completed.
	CompletedCount int `json:"completed_count"`

	// ActiveOrders counts order references inside Unpaid bills in the window.
	ActiveOrders int `json:"active_orders"`

	// AvgOrderValue is revenue / order count, "0.00" when no orders.
	AvgOrderValue string `json:"avg_order_value"`

	// CompletionRate is completed/total as a percentage string, e.g. "75.00%".
	CompletionRate string `json:"completion_rate"`

	PaymentBreakdown PaymentBreakdown `json:"payment_breakdown"`
}

// TopItem is one entry of the best-seller ranking.
type TopItem struct {
	// Name is the line-item name (snapshot name, not the current menu name).
	Name string `json:"name"`

	// Quantity is the summed non-cancelled quantity in the window.
	Quantity int64 `json:"quantity"`
}

// PeriodSummary extends Summary with the window label and best sellers,
// returned by the month/year filtered report.
type PeriodSummary struct {
	Summary

	// Period labels the window, e.g. "March 2026" or "2026".
	Period string `json:"period"`

	// TopItems are the top 5 items by summed non-cancelled quantity.
	TopItems []TopItem `json:"top_items"`
}
