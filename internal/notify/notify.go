// Package notify fans out domain events to interested listeners (kitchen
// displays, waiter dashboards). The handle is injected through constructors
// rather than held in package-level state, so tests and alternative
// transports can swap it freely.
package notify

import "log/slog"

// Event names published by the services.
const (
	EventOrderCreated  = "order.created"
	EventOrderStatus   = "order.status"
	EventItemCancelled = "order.item_cancelled"
	EventBillPaid      = "bill.paid"
	EventTableMoved    = "table.moved"
)

// Notifier publishes a domain event with an arbitrary payload.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Publish(event string, payload any)
}

// LogNotifier writes events to the structured log. It stands in for a push
// transport in deployments that have none.
type LogNotifier struct{}

// Publish logs the event at debug level.
func (LogNotifier) Publish(event string, payload any) {
	slog.Debug("event published", "event", event, "payload", payload)
}

// Noop discards all events. Useful in tests.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(string, any) {}
