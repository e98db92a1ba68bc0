package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ayush/bemestar-report/internal/models"
)

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// ReportCreatedEvent is published after a report has been saved.
type ReportCreatedEvent struct {
	Event     string    `json:"event"`
	ID        string    `json:"id"`
	UserName  string    `json:"nome_usuario"`
	CreatedAt time.Time `json:"data_analise"`
}

const EventReportCreated = "report.created"

// EventPublisher announces report lifecycle events on a Redis channel.
type EventPublisher struct {
	rdb     redis.UniversalClient
	channel string
}

func NewEventPublisher(rdb redis.UniversalClient, channel string) *EventPublisher {
	return &EventPublisher{rdb: rdb, channel: channel}
}

func (p *EventPublisher) ReportCreated(ctx context.Context, r *models.Report) error {
	payload, err := json.Marshal(ReportCreatedEvent{
		Event:     EventReportCreated,
		ID:        r.ID,
		UserName:  r.UserName,
		CreatedAt: r.CreatedAt,
	})
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}
