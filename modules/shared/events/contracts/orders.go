// Package contracts defines public event contracts for inter-module communication.
// Modules should import event types from here, NOT from other module's domain packages.
package contracts

import "github.com/Ron9508/bookstore-backend/modules/shared/events"

const (
	OrderPlacedEventType events.EventType = "orders.OrderPlaced"
)

// OrderPlacedEvent is emitted after an order has been durably committed.
type OrderPlacedEvent struct {
	events.BaseEvent
	OrderID    string `json:"order_id"`
	UserID     string `json:"user_id"`
	TotalCents int64  `json:"total_cents"`
	ItemCount  int    `json:"item_count"`
}

func NewOrderPlacedEvent(orderID, userID string, totalCents int64, itemCount int) OrderPlacedEvent {
	return OrderPlacedEvent{
		BaseEvent:  events.NewBaseEvent(OrderPlacedEventType, orderID),
		OrderID:    orderID,
		UserID:     userID,
		TotalCents: totalCents,
		ItemCount:  itemCount,
	}
}
