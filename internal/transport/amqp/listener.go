// Package amqp listens for catalog change events on RabbitMQ and schedules
// snapshot reloads.
package amqp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp091 "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrDeliveriesClosed is returned by Run when the broker closes the consumer.
var ErrDeliveriesClosed = errors.New("amqp delivery channel closed")

// channel is the subset of *amqp091.Channel the listener uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
}

// Invalidator schedules a catalog reload.
type Invalidator interface {
	Invalidate()
}

// Listener turns every delivery on a queue into a catalog invalidation.
// Message bodies are not inspected; any change reloads the whole catalog.
type Listener struct {
	ch     channel
	queue  string
	tag    string
	target Invalidator
	logger *zap.Logger
}

// NewListener creates a listener on queue.
func NewListener(ch channel, queue string, target Invalidator, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		ch:     ch,
		queue:  queue,
		tag:    "propdex-" + uuid.NewString()[:8],
		target: target,
		logger: logger.With(zap.String("component", "catalog_listener"), zap.String("queue", queue)),
	}
}

// Dial connects to the broker and opens a channel. The caller closes both.
func Dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open amqp channel: %w", err)
	}
	return conn, ch, nil
}

// Run declares the queue and consumes until ctx is done or the broker closes
// the delivery channel.
func (l *Listener) Run(ctx context.Context) error {
	if _, err := l.ch.QueueDeclare(l.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", l.queue, err)
	}
	deliveries, err := l.ch.Consume(l.queue, l.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", l.queue, err)
	}

	l.logger.Info("listening for catalog changes", zap.String("consumer_tag", l.tag))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			l.handle(d)
		}
	}
}

func (l *Listener) handle(d amqp091.Delivery) {
	traceID, ok := d.Headers["x-trace-id"].(string)
	if !ok || traceID == "" {
		traceID = d.MessageId
	}

	l.target.Invalidate()

	if err := d.Ack(false); err != nil {
		l.logger.Warn("ack failed", zap.Uint64("delivery_tag", d.DeliveryTag), zap.Error(err))
		return
	}
	l.logger.Info("catalog change received",
		zap.String("trace_id", traceID),
		zap.String("routing_key", d.RoutingKey),
		zap.Uint64("delivery_tag", d.DeliveryTag),
	)
}
