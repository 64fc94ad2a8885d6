package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	retry RetryPolicy
}

// RetryPolicy bounds redelivery of events whose handler asked for another attempt.
// A message that has been delivered MaxRedeliveries times is dead-lettered instead of requeued.
type RetryPolicy struct {
	Delay           time.Duration
	MaxRedeliveries int
}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")

	parsed, err := url.Parse(clean)
	if err != nil {
		return "", fmt.Errorf("parsing amqp url: %w", err)
	}

	if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
		return "", fmt.Errorf("invalid amqp scheme: %q", parsed.Scheme)
	}

	return clean, nil
}

func NewConsumer(amqpURL string, retry RetryPolicy) (*Consumer, error) {
	clean, err := sanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(clean)
	if err != nil {
		return nil, fmt.Errorf("dialing amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening amqp channel: %w", err)
	}

	return &Consumer{conn: conn, ch: ch, retry: retry}, nil
}

// Run declares the topic exchange and a durable queue bound to every routing key in
// bindings, then dispatches deliveries until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context, exchange, queue string, bindings map[string]func([]byte) bool) error {
	if len(bindings) == 0 {
		return errors.New("no bindings provided")
	}

	if err := c.ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring exchange: %w", err)
	}

	dlx := exchange + ".dlx"

	if err := c.ch.ExchangeDeclare(dlx, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring dead-letter exchange: %w", err)
	}

	dead, err := c.ch.QueueDeclare(queue+".dead", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declaring dead-letter queue: %w", err)
	}

	if err := c.ch.QueueBind(dead.Name, "", dlx, false, nil); err != nil {
		return fmt.Errorf("binding dead-letter queue: %w", err)
	}

	// quorum queues stamp x-delivery-count on every redelivery
	q, err := c.ch.QueueDeclare(queue, true, false, false, false, amqp.Table{
		"x-queue-type":           "quorum",
		"x-dead-letter-exchange": dlx,
	})
	if err != nil {
		return fmt.Errorf("declaring queue: %w", err)
	}

	for routingKey := range bindings {
		if err := c.ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			return fmt.Errorf("binding %s: %w", routingKey, err)
		}
	}

	if err := c.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("setting qos: %w", err)
	}

	msgs, err := c.ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("starting consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("amqp delivery channel closed")
			}

			dispatch(ctx, bindings, d, c.retry)
		}
	}
}

// acknowledger is the subset of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func dispatch(ctx context.Context, bindings map[string]func([]byte) bool, d amqp.Delivery, retry RetryPolicy) {
	settle(ctx, bindings[d.RoutingKey], d.RoutingKey, d.Body, deliveryCount(d), &d, retry)
}

// deliveryCount reports how many times the message was delivered before this attempt.
func deliveryCount(d amqp.Delivery) int {
	switch n := d.Headers["x-delivery-count"].(type) {
	case int64:
		return int(n)
	case int32:
		return int(n)
	case int:
		return n
	}

	if d.Redelivered {
		return 1
	}

	return 0
}

func settle(ctx context.Context, handler func([]byte) bool, routingKey string, body []byte, deliveries int, ack acknowledger, retry RetryPolicy) {
	if handler == nil {
		slog.Warn("no handler for routing key, dropping", "routing_key", routingKey)
		ack.Ack(false)

		return
	}

	if handler(body) {
		ack.Ack(false)
		return
	}

	if retry.MaxRedeliveries > 0 && deliveries >= retry.MaxRedeliveries {
		slog.Error("payment event exhausted redeliveries, dead-lettering", "routing_key", routingKey, "deliveries", deliveries)
		ack.Nack(false, false)

		return
	}

	if retry.Delay > 0 {
		t := time.NewTimer(retry.Delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}

	ack.Nack(false, true)
}

func (c *Consumer) Close() {
	if c.ch != nil {
		c.ch.Close()
	}

	if c.conn != nil {
		c.conn.Close()
	}
}
