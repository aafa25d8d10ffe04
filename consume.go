package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"github.com/muhammadolammi/aithera/internal/metrics"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type statusStore interface {
	UpdateAnalysisJobStatus(ctx context.Context, arg database.UpdateAnalysisJobStatusParams) error
}

type updatePublisher interface {
	PublishUpdate(u messaging.Update) error
}

type jobProcessor interface {
	Process(ctx context.Context, job messaging.Job) ([]resume.Result, error)
}

// consumer turns queued analysis jobs into results, reporting every status
// change to the database and the updates exchange.
type consumer struct {
	store     statusStore
	updates   updatePublisher
	processor jobProcessor
	log       *zap.Logger
}

// handle processes one message body. It never fails: problems end up as a
// failed job status.
func (c *consumer) handle(ctx context.Context, body []byte) {
	var job messaging.Job
	if err := json.Unmarshal(body, &job); err != nil {
		c.log.Error("error unmarshalling message body", zap.Error(err))
		metrics.AnalysisJobs.WithLabelValues(messaging.StatusFailed).Inc()
		return
	}
	log := c.log.With(zap.String("job_id", job.ID.String()))
	log.Info("Processing analysis job")

	c.setStatus(ctx, job.ID, messaging.StatusProcessing, "analysis started")
	if _, err := c.processor.Process(ctx, job); err != nil {
		log.Error("error running agent for job", zap.Error(err))
		c.setStatus(ctx, job.ID, messaging.StatusFailed, "analysis failed")
		return
	}
	c.setStatus(ctx, job.ID, messaging.StatusCompleted, "analysis completed")
}

func (c *consumer) setStatus(ctx context.Context, id uuid.UUID, status, msg string) {
	if status != messaging.StatusProcessing {
		metrics.AnalysisJobs.WithLabelValues(status).Inc()
	}
	err := c.store.UpdateAnalysisJobStatus(ctx, database.UpdateAnalysisJobStatusParams{Status: status, ID: id})
	if err != nil {
		c.log.Error("failed to update job status", zap.String("job_id", id.String()), zap.String("status", status), zap.Error(err))
	}
	if err := c.updates.PublishUpdate(messaging.Update{JobID: id, Status: status, Message: msg}); err != nil {
		c.log.Warn("failed to publish update", zap.String("job_id", id.String()), zap.Error(err))
	}
}

// worker consumes the queue on its own channel until ctx ends or the
// channel closes. A message is acked once it has been handled.
func (c *consumer) worker(ctx context.Context, id int, conn *amqp.Connection, queue string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := messaging.DeclareQueue(ch, queue); err != nil {
		return err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}
	msgs, err := ch.Consume(
		queue, // queue name
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("error consuming rabbitmq message: %w", err)
	}

	log := c.log.With(zap.Int("worker", id))
	log.Info("Worker started")
	for {
		select {
		case <-ctx.Done():
			log.Info("Worker stopping")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("worker %d: delivery channel closed", id)
			}
			c.handle(ctx, msg.Body)
			if err := msg.Ack(false); err != nil {
				log.Warn("failed to ack message", zap.Error(err))
			}
		}
	}
}

// startConsumerWorkerPool runs n workers and blocks until all of them stop.
func (c *consumer) startConsumerWorkerPool(ctx context.Context, n int, conn *amqp.Connection, queue string) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			if err := c.worker(ctx, i+1, conn, queue); err != nil {
				c.log.Error("Worker exited", zap.Int("worker", i+1), zap.Error(err))
			}
		}()
	}
	wg.Wait()
}
