package reporting

import (
	"fmt"

	"github.com/dinewise/pos/internal/models"
)

// Inputs are the raw window aggregates a summary is computed from.
type Inputs struct {
	// PaidBills are the bills settled inside the window.
	PaidBills []models.Bill

	// TotalOrders and CompletedOrders count orders created in the window.
	TotalOrders     int
	CompletedOrders int

	// ActiveOrders counts order references inside the window's unpaid bills.
	ActiveOrders int
}

// BuildSummary computes the display summary for one window. Monetary fields
// come out as 2-decimal strings and the completion rate carries a "%"
// suffix; the frontend renders both verbatim.
func BuildSummary(in Inputs) models.Summary {
	var revenue, cash, online float64
	for _, b := range in.PaidBills {
		revenue += b.TotalAmount
		switch b.PaymentMethod {
		case models.PayCash:
			cash += b.TotalAmount
		case models.PayOnline:
			online += b.TotalAmount
		case models.PaySplit:
			cash += b.PaymentAmounts.Cash
			online += b.PaymentAmounts.Online
		}
	}

	avg := 0.0
	if in.TotalOrders > 0 {
		avg = revenue / float64(in.TotalOrders)
	}
	rate := 0.0
	if in.TotalOrders > 0 {
		rate = float64(in.CompletedOrders) / float64(in.TotalOrders) * 100
	}

	return models.Summary{
		Revenue:        FormatAmount(revenue),
		OrderCount:     in.TotalOrders,
		CompletedCount: in.CompletedOrders,
		ActiveOrders:   in.ActiveOrders,
		AvgOrderValue:  FormatAmount(avg),
		CompletionRate: FormatPercent(rate),
		PaymentBreakdown: models.PaymentBreakdown{
			Cash:   FormatAmount(cash),
			Online: FormatAmount(online),
			Total:  FormatAmount(revenue),
		},
	}
}

// FormatAmount renders a monetary value with exactly two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatPercent renders a percentage with two decimals and a "%" suffix.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
