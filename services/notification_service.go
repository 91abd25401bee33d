package services

import (
	"context"
	"encoding/json"
	"foodmenu_server/messaging"
	"foodmenu_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

const notificationTimeout = 5 * time.Second

// EventPublisher delivers an event body under a routing key
type EventPublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

// OrderMailer sends the staff e-mail for a new order
type OrderMailer interface {
	SendNewOrderEmail(order *tables.Order) error
}

// NotificationService fans committed order changes out to the broker and staff e-mail.
// Either channel may be nil. Failures are logged and never reach the caller.
type NotificationService struct {
	logger    *gecho.Logger
	publisher EventPublisher
	mailer    OrderMailer
}

func NewNotificationService(logger *gecho.Logger, publisher EventPublisher, mailer OrderMailer) *NotificationService {
	return &NotificationService{
		logger:    logger,
		publisher: publisher,
		mailer:    mailer,
	}
}

func (ns *NotificationService) OrderCreated(ctx context.Context, order *tables.Order) {
	ns.publish(ctx, messaging.NewOrderCreatedEvent(order))

	if ns.mailer != nil {
		if err := ns.mailer.SendNewOrderEmail(order); err != nil {
			ns.logger.Error("Failed to send new order email",
				gecho.Field("error", err),
				gecho.Field("order_id", order.Id),
			)
		}
	}
}

func (ns *NotificationService) OrderStatusChanged(ctx context.Context, order *tables.Order, previous tables.OrderStatus) {
	ns.publish(ctx, messaging.NewOrderStatusChangedEvent(order, previous))
}

func (ns *NotificationService) publish(ctx context.Context, event messaging.OrderEvent) {
	if ns.publisher == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		ns.logger.Error("Failed to encode order event", gecho.Field("error", err), gecho.Field("type", event.Type))
		return
	}

	// the request may be finished by the time the broker answers
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	if err := ns.publisher.Publish(ctx, event.Type, event.EventId.String(), body); err != nil {
		ns.logger.Error("Failed to publish order event",
			gecho.Field("error", err),
			gecho.Field("type", event.Type),
			gecho.Field("order_id", event.OrderId),
		)
		return
	}

	ns.logger.Debug("Order event published", gecho.Field("type", event.Type), gecho.Field("order_id", event.OrderId))
}
