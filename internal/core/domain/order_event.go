package domain

import "time"

// OrderEventType names a committed change to an order.
type OrderEventType string

const (
	OrderEventCreated        OrderEventType = "order.created"
	OrderEventEdited         OrderEventType = "order.edited"
	OrderEventStatusChanged  OrderEventType = "order.status_changed"
	OrderEventDeleted        OrderEventType = "order.deleted"
	OrderEventPaymentAdded   OrderEventType = "order.payment_added"
	OrderEventPaymentRemoved OrderEventType = "order.payment_removed"
)

// OrderEvent is published after a successful commit.
type OrderEvent struct {
	Type        OrderEventType `json:"type"`
	OrderID     string         `json:"orderID"`
	OrderNumber string         `json:"orderNumber"`
	Status      OrderStatus    `json:"status"`
	Version     int64          `json:"version"`
	ActorID     string         `json:"actorID"`
	OccurredAt  time.Time      `json:"occurredAt"`
}

// NewOrderEvent builds an event for the order's current state.
func NewOrderEvent(t OrderEventType, o Order, actor Actor, at time.Time) OrderEvent {
	return OrderEvent{
		Type:        t,
		OrderID:     o.OrderID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Version:     o.Version,
		ActorID:     actor.UserID,
		OccurredAt:  at,
	}
}
