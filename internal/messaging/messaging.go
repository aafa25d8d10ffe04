// Package messaging carries resume analysis jobs and their status updates over RabbitMQ.
package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job is the message placed on the analysis queue.
type Job struct {
	ID             uuid.UUID `json:"id"`
	StudentID      string    `json:"student_id"`
	TargetRole     string    `json:"target_role"`
	JobDescription string    `json:"job_description"`
	CreatedAt      time.Time `json:"created_at"`
}

// Update is published to the updates exchange whenever a job changes status.
type Update struct {
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutingKey is the topic key subscribers bind to for one job's updates.
func RoutingKey(jobID uuid.UUID) string {
	return fmt.Sprintf("analysis.%s", jobID)
}

// DeclareQueue declares the durable job queue.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // queue name
		true,  // durable (survives broker restarts)
		false, // auto-delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return nil
}

// DeclareExchange declares the topic exchange updates are published to.
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return nil
}

// Publisher sends jobs and updates on short-lived channels of one connection.
type Publisher struct {
	conn     *amqp.Connection
	queue    string
	exchange string
}

func NewPublisher(conn *amqp.Connection, queue, exchange string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := DeclareQueue(ch, queue); err != nil {
		return nil, err
	}
	if err := DeclareExchange(ch, exchange); err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, queue: queue, exchange: exchange}, nil
}

// PublishJob enqueues a job for the worker pool.
func (p *Publisher) PublishJob(job Job) error {
	return p.publish("", p.queue, job, amqp.Persistent)
}

// PublishUpdate announces a status change on the updates exchange.
func (p *Publisher) PublishUpdate(u Update) error {
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}
	return p.publish(p.exchange, RoutingKey(u.JobID), u, amqp.Transient)
}

func (p *Publisher) publish(exchange, key string, v any, mode uint8) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.Publish(
		exchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: mode,
			Body:         body,
		},
	)
}
