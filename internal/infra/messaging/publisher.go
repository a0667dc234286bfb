package messaging

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase"
	"reservation-hub/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errPublishNacked = errs.New("broker did not confirm the event")

// AMQPPublisher publishes outbox events to a topic exchange, routed by
// event kind, and waits for the broker confirm of every message.
//
// A closed connection or channel is dropped and redialed on the next
// Publish. Failures caused by the broker being unreachable are marked with
// usecase.ErrPublisherUnavailable.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher dials once so a wrong URL fails startup.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect must be called with mu held.
func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "declare exchange")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "enable publisher confirms")
	}

	p.conn, p.ch = conn, ch
	go p.watch(conn, conn.NotifyClose(make(chan *amqp.Error, 1)), ch.NotifyClose(make(chan *amqp.Error, 1)))
	return nil
}

// watch drops the connection once the broker closes it or its channel.
func (p *AMQPPublisher) watch(conn *amqp.Connection, connClosed, chClosed <-chan *amqp.Error) {
	var reason *amqp.Error
	select {
	case reason = <-connClosed:
	case reason = <-chClosed:
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != conn {
		return
	}
	if reason != nil {
		slog.Warn("AMQP connection lost, redialing on next publish", "reason", reason.Error())
	}
	p.resetLocked()
}

func (p *AMQPPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.resetLocked()
		if err := p.connect(); err != nil {
			return errs.Mark(err, usecase.ErrPublisherUnavailable)
		}
	}

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, RoutingKey(event), false, false, toPublishing(event))
	if err != nil {
		return p.classify(err, "publish outbox event")
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return p.classify(err, "wait for publisher confirm")
	}
	if !acked {
		return errPublishNacked
	}
	return nil
}

// classify must be called with mu held.
func (p *AMQPPublisher) classify(err error, msg string) error {
	wrapped := errs.Wrap(err, msg)
	if connectionLost(err) || p.ch.IsClosed() {
		p.resetLocked()
		return errs.Mark(wrapped, usecase.ErrPublisherUnavailable)
	}
	return wrapped
}

func connectionLost(err error) bool {
	if errors.Is(err, amqp.ErrClosed) {
		return true
	}
	var amqpErr *amqp.Error
	return errors.As(err, &amqpErr) && !amqpErr.Recover
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	var err error
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
	return err
}

// RoutingKey is "<topic>.<kind>", e.g. "bookings.booking.confirmed".
func RoutingKey(event shared.OutboxEvent) string {
	return event.Topic + "." + event.Kind
}

func toPublishing(event shared.OutboxEvent) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Type:         event.Kind,
		Timestamp:    event.CreatedAt,
		Body:         event.Payload,
	}
}
