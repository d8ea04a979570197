// cmd/activity-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"activity-registry/internal/common/config"
	"activity-registry/internal/common/logger"
	"activity-registry/internal/common/observability"
	"activity-registry/internal/events"
	"activity-registry/internal/registry"
	"activity-registry/internal/server"
	"activity-registry/pkg/seedfile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activity registry...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Seed the registry ---
	seed := registry.DefaultActivities()
	if cfg.Registry.SeedPath != "" {
		sf, err := seedfile.Load(cfg.Registry.SeedPath)
		if err != nil {
			zapLog.Fatal("seed file load failed", zap.Error(err), zap.String("path", cfg.Registry.SeedPath))
		}
		seed = sf.ToActivities()
		zapLog.Info("Loaded seed file",
			zap.String("path", cfg.Registry.SeedPath),
			zap.String("version", sf.Version),
			zap.Int("activities", len(seed)),
		)
	}

	reg, err := registry.New(seed)
	if err != nil {
		zapLog.Fatal("registry seeding failed", zap.Error(err))
	}
	zapLog.Info("Registry seeded", zap.Int("activities", reg.Len()))

	// --- Init event publisher with retry ---
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		var streamPub *events.StreamPublisher
		err = retryWithBackoff(func() error {
			var err error
			streamPub, err = events.NewStreamPublisher(cfg.Events, log)
			if err != nil {
				return err
			}
			return streamPub.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer streamPub.Close()
		publisher = streamPub
		zapLog.Info("Redis connected successfully", zap.String("stream", cfg.Events.Stream))
	} else {
		zapLog.Info("Roster event stream disabled")
	}

	// --- HTTP Server ---
	srv := server.New(cfg, reg, publisher, obs, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, draining requests...", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("Error during shutdown", zap.Error(err))
		}
	}

	zapLog.Info("Activity registry stopped gracefully")
}
