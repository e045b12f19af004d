// Package rabbit publishes audit events to a RabbitMQ topic exchange.
package rabbit

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends JSON messages to a durable topic exchange.
// A nil *Publisher publishes nothing.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// Dial connects to url and declares exchange. An empty url returns a nil
// publisher and no error, so fan-out stays optional.
func Dial(url, exchange string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp declare exchange %q: %w", exchange, err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends body with the given routing key.
func (p *Publisher) Publish(ctx context.Context, key string, body []byte) error {
	if p == nil || p.ch == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
		Timestamp:    time.Now(),
	})
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return fmt.Errorf("amqp close channel: %w", err)
	}
	return p.conn.Close()
}
