// Package events publishes booking domain events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seat-booking/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

const BookingCreatedQueue = "booking.created"

type BookingCreated struct {
	BookingID   int       `json:"booking_id"`
	Reference   uuid.UUID `json:"reference"`
	MovieID     int       `json:"movie_id"`
	MovieTitle  string    `json:"movie_title"`
	SeatID      int       `json:"seat_id"`
	SeatNumber  string    `json:"seat_number"`
	UserID      int       `json:"user_id"`
	BookingDate time.Time `json:"booking_date"`
}

func NewBookingCreated(b *domain.Booking) BookingCreated {
	return BookingCreated{
		BookingID:   b.ID,
		Reference:   b.Reference,
		MovieID:     b.MovieID,
		MovieTitle:  b.MovieTitle,
		SeatID:      b.SeatID,
		SeatNumber:  b.SeatNumber,
		UserID:      b.UserID,
		BookingDate: b.BookingDate,
	}
}

type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
}

// AMQPPublisher publishes persistent JSON messages to a durable queue on the
// default exchange. The connection is opened lazily and reopened after it
// is closed by the broker.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	if queue == "" {
		queue = BookingCreatedQueue
	}

	return &AMQPPublisher{
		url:   url,
		queue: queue,
	}
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Reference.String(),
		Timestamp:    time.Now().UTC(),
		Type:         BookingCreatedQueue,
		Body:         body,
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("dial: %w", err)
		}

		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(p.queue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	p.ch = ch

	return ch, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error

	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}

	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}

	p.ch, p.conn = nil, nil

	return errors.Join(errs...)
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(context.Context, BookingCreated) error {
	return nil
}

// RecordingPublisher keeps published events in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []BookingCreated
}

func (p *RecordingPublisher) PublishBookingCreated(_ context.Context, event BookingCreated) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *RecordingPublisher) Events() []BookingCreated {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]BookingCreated(nil), p.events...)
}
