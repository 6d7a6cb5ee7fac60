// Package queue publishes booking lifecycle events to RabbitMQ for
// downstream consumers such as notification workers.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const bookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is the message emitted after a booking commit.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	ShowID      string    `json:"show_id"`
	ShowDate    string    `json:"show_date"`
	SeatNumbers []string  `json:"seat_numbers"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
}

// NewPublisher connects to the broker and declares the durable booking
// queue. An empty URL disables publishing and returns a nil publisher.
func NewPublisher(url string, log *zap.Logger) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		bookingConfirmedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", bookingConfirmedQueue, err)
	}

	log.Info("Queue publisher ready", zap.String("queue", bookingConfirmedQueue))

	return &Publisher{
		conn: conn,
		ch:   ch,
		log:  log.With(zap.String("component", "queue")),
	}, nil
}

func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",
		bookingConfirmedQueue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", bookingConfirmedQueue, err)
	}

	p.log.Debug("Booking event published", zap.String("booking_id", event.BookingID))
	return nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
