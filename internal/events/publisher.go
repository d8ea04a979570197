// Package events publishes roster changes to a Redis stream so other
// school systems can follow signups without polling the registry.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"activity-registry/internal/common/config"
	"activity-registry/internal/common/logger"
)

const (
	EventTypeSignup     = "signup"
	EventTypeUnregister = "unregister"
)

// RosterEvent describes one committed roster change.
type RosterEvent struct {
	ID        string
	Type      string
	Activity  string
	Email     string
	Timestamp time.Time
}

// Publisher emits roster events. Publishing happens after the registry
// mutation has committed and must never fail the request.
type Publisher interface {
	Publish(ctx context.Context, event RosterEvent) error
	Close() error
}

// StreamPublisher writes roster events to a Redis stream via XADD.
type StreamPublisher struct {
	client *redis.Client
	stream string
	logger logger.Logger
}

// NewStreamPublisher creates a publisher for the configured stream.
func NewStreamPublisher(cfg config.EventsConfig, log logger.Logger) (*StreamPublisher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &StreamPublisher{
		client: rdb,
		stream: cfg.Stream,
		logger: log,
	}, nil
}

// Ping tests the Redis connection.
func (p *StreamPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Publish appends the event to the stream. The event ID is generated
// here when the caller leaves it empty.
func (p *StreamPublisher) Publish(ctx context.Context, event RosterEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"event_id":  event.ID,
			"type":      event.Type,
			"activity":  event.Activity,
			"email":     event.Email,
			"timestamp": event.Timestamp.Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	p.logger.Debug("Published roster event", map[string]interface{}{
		"event_id": event.ID,
		"type":     event.Type,
		"activity": event.Activity,
	})

	return nil
}

// Close closes the underlying Redis connection.
func (p *StreamPublisher) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// NopPublisher discards all events. Used when the event stream is
// disabled in config.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event RosterEvent) error { return nil }
func (NopPublisher) Close() error                                         { return nil }
