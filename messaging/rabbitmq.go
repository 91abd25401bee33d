// Package messaging publishes order events to RabbitMQ.
package messaging

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"foodmenu_server/structs"
	"net/url"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client is a single channel in confirm mode. Every publish waits on the confirmation of its own delivery tag.
type Client struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// confirmation is the part of *amqp.DeferredConfirmation that Publish waits on
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

func brokerURL(cfg *structs.BrokerConfig) string {
	scheme := "amqp"
	if cfg.UseTLS {
		scheme = "amqps"
	}

	vhost := cfg.VHost
	if vhost == "" {
		vhost = "/"
	}

	return fmt.Sprintf("%s://%s@%s:%d/%s",
		scheme, url.UserPassword(cfg.User, cfg.Password).String(), cfg.Host, cfg.Port, url.PathEscape(vhost))
}

// Dial connects, enables publisher confirms and declares the durable topic exchange events go to
func Dial(cfg *structs.BrokerConfig) (*Client, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	if cfg.UseTLS {
		conn, err = amqp.DialTLS(brokerURL(cfg), &tls.Config{MinVersion: tls.VersionTLS12})
	} else {
		conn, err = amqp.Dial(brokerURL(cfg))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	return &Client{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func (c *Client) Ping() error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Publish sends a persistent JSON message to the client's exchange and waits for the broker ack
func (c *Client) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, c.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"x-source": "foodmenu-server"},
		Body:         body,
	})
	if err != nil {
		return err
	}
	if dc == nil {
		return errors.New("channel is not in confirm mode")
	}

	return awaitConfirmation(ctx, dc)
}

// awaitConfirmation blocks until the broker acks or nacks the delivery, or ctx ends.
// A confirmation that arrives after ctx ended belongs to its own delivery tag and is dropped by amqp091.
func awaitConfirmation(ctx context.Context, dc confirmation) error {
	acked, err := dc.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return errors.New("publish NACK from broker")
	}
	return nil
}
