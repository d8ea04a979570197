package events

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-registry/internal/common/config"
	"activity-registry/internal/common/logger"
)

func newTestPublisher(t *testing.T) (*StreamPublisher, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	cfg := config.EventsConfig{
		Enabled: true,
		Stream:  "roster-events",
		Redis: config.RedisConfig{
			Address: mr.Addr(),
		},
	}

	pub, err := NewStreamPublisher(cfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })

	return pub, mr
}

func TestStreamPublisher(t *testing.T) {
	t.Run("ping succeeds against live server", func(t *testing.T) {
		pub, _ := newTestPublisher(t)
		require.NoError(t, pub.Ping(context.Background()))
	})

	t.Run("publish appends to the stream", func(t *testing.T) {
		pub, mr := newTestPublisher(t)

		err := pub.Publish(context.Background(), RosterEvent{
			Type:     EventTypeSignup,
			Activity: "Chess Club",
			Email:    "alex@mergington.edu",
		})
		require.NoError(t, err)

		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()

		entries, err := rdb.XRange(context.Background(), "roster-events", "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, entries, 1)

		values := entries[0].Values
		assert.Equal(t, "signup", values["type"])
		assert.Equal(t, "Chess Club", values["activity"])
		assert.Equal(t, "alex@mergington.edu", values["email"])
		assert.NotEmpty(t, values["event_id"])

		_, err = time.Parse(time.RFC3339, values["timestamp"].(string))
		assert.NoError(t, err)
	})

	t.Run("events preserve publish order", func(t *testing.T) {
		pub, mr := newTestPublisher(t)

		ctx := context.Background()
		require.NoError(t, pub.Publish(ctx, RosterEvent{Type: EventTypeSignup, Activity: "Chess Club", Email: "a@mergington.edu"}))
		require.NoError(t, pub.Publish(ctx, RosterEvent{Type: EventTypeUnregister, Activity: "Chess Club", Email: "a@mergington.edu"}))

		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()

		entries, err := rdb.XRange(ctx, "roster-events", "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "signup", entries[0].Values["type"])
		assert.Equal(t, "unregister", entries[1].Values["type"])
	})

	t.Run("publish fails when the server is gone", func(t *testing.T) {
		pub, mr := newTestPublisher(t)
		mr.Close()

		err := pub.Publish(context.Background(), RosterEvent{
			Type:     EventTypeSignup,
			Activity: "Chess Club",
			Email:    "alex@mergington.edu",
		})
		assert.Error(t, err)
	})
}

func TestNopPublisher(t *testing.T) {
	pub := NopPublisher{}
	assert.NoError(t, pub.Publish(context.Background(), RosterEvent{Type: EventTypeSignup}))
	assert.NoError(t, pub.Close())
}
