package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/muhammadolammi/aithera/internal/config"
	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/streadway/amqp"
)

// pipeline holds the connections shared by the upload API and the worker.
type pipeline struct {
	db        *sql.DB
	conn      *amqp.Connection
	queries   *database.Queries
	objects   *resume.R2
	publisher *messaging.Publisher
}

func openPipeline(ctx context.Context, cfg *config.Config) (*pipeline, error) {
	if err := cfg.RequirePipeline(); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error reaching db: %w", err)
	}

	objects, err := resume.NewR2(ctx, cfg.R2)
	if err != nil {
		db.Close()
		return nil, err
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}
	publisher, err := messaging.NewPublisher(conn, cfg.AnalysisQueue, cfg.UpdateExchange)
	if err != nil {
		conn.Close()
		db.Close()
		return nil, err
	}

	return &pipeline{
		db:        db,
		conn:      conn,
		queries:   database.New(db),
		objects:   objects,
		publisher: publisher,
	}, nil
}

func (p *pipeline) Close() {
	p.conn.Close()
	p.db.Close()
}
