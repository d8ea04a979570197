package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-registry/internal/common/config"
	"activity-registry/internal/common/logger"
	"activity-registry/internal/events"
	"activity-registry/internal/registry"
)

func TestSignupPublishesRosterEvent(t *testing.T) {
	mr := miniredis.RunT(t)

	eventsCfg := config.EventsConfig{
		Enabled: true,
		Stream:  "roster-events",
		Redis:   config.RedisConfig{Address: mr.Addr()},
	}

	pub, err := events.NewStreamPublisher(eventsCfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })

	reg, err := registry.New(registry.DefaultActivities())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.Address = ":0"
	cfg.Server.StaticDir = t.TempDir()
	cfg.Events = eventsCfg

	s := New(cfg, reg, pub, nil, logger.NewTestLogger(t))

	rec := doRequest(t, s, http.MethodPost, signupURL("Robotics Club", "alex@mergington.edu"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, unregisterURL("Robotics Club", "alex@mergington.edu"))
	require.Equal(t, http.StatusOK, rec.Code)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	entries, err := rdb.XRange(context.Background(), "roster-events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "signup", entries[0].Values["type"])
	assert.Equal(t, "unregister", entries[1].Values["type"])
	assert.Equal(t, "Robotics Club", entries[0].Values["activity"])
	assert.Equal(t, "alex@mergington.edu", entries[0].Values["email"])
}

func TestFailedMutationPublishesNothing(t *testing.T) {
	mr := miniredis.RunT(t)

	eventsCfg := config.EventsConfig{
		Enabled: true,
		Stream:  "roster-events",
		Redis:   config.RedisConfig{Address: mr.Addr()},
	}

	pub, err := events.NewStreamPublisher(eventsCfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })

	reg, err := registry.New(registry.DefaultActivities())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.Address = ":0"
	cfg.Server.StaticDir = t.TempDir()
	cfg.Events = eventsCfg

	s := New(cfg, reg, pub, nil, logger.NewTestLogger(t))

	rec := doRequest(t, s, http.MethodPost, signupURL("Chess Club", "michael@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	exists, err := rdb.Exists(context.Background(), "roster-events").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)
}
