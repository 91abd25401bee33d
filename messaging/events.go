package messaging

import (
	"foodmenu_server/structs/tables"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoutingKeyOrderCreated       = "order.created"
	RoutingKeyOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message body of every order event
type OrderEvent struct {
	EventId        uuid.UUID          `json:"event_id"`
	Type           string             `json:"type"`
	OrderId        uuid.UUID          `json:"order_id"`
	Status         tables.OrderStatus `json:"status"`
	PreviousStatus tables.OrderStatus `json:"previous_status,omitempty"`
	Amount         decimal.Decimal    `json:"amount"`
	ClientId       *int64             `json:"client_id,omitempty"`
	ItemCount      int                `json:"item_count"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

func NewOrderCreatedEvent(order *tables.Order) OrderEvent {
	return newOrderEvent(RoutingKeyOrderCreated, order, "")
}

func NewOrderStatusChangedEvent(order *tables.Order, previous tables.OrderStatus) OrderEvent {
	return newOrderEvent(RoutingKeyOrderStatusChanged, order, previous)
}

func newOrderEvent(eventType string, order *tables.Order, previous tables.OrderStatus) OrderEvent {
	return OrderEvent{
		EventId:        uuid.New(),
		Type:           eventType,
		OrderId:        order.Id,
		Status:         order.Status,
		PreviousStatus: previous,
		Amount:         order.Amount,
		ClientId:       order.ClientId,
		ItemCount:      len(order.Items),
		OccurredAt:     time.Now().UTC(),
	}
}
