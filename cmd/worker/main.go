package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/worktrack/pkg/app"
	"github.com/ghuser/worktrack/pkg/cache"
	"github.com/ghuser/worktrack/pkg/config"
	"github.com/ghuser/worktrack/pkg/database"
	"github.com/ghuser/worktrack/pkg/events"
	"github.com/ghuser/worktrack/pkg/logger"
	"github.com/ghuser/worktrack/pkg/telemetry"
	workitemEvents "github.com/ghuser/worktrack/services/workitem/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	//temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	//if err != nil {
	//	log.Error("failed to initialize temporal client", "error", err)
	//	os.Exit(1) //nolint:gocritic
	//}
	//defer temporalClient.Close()

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		//TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		workitemEvents.TopicWorkItemCreated:           handleWorkItemCreated(a),
		workitemEvents.TopicWorkItemsBulkTransitioned: handleWorkItemsBulkTransitioned(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleWorkItemCreated returns a handler for workitem.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleWorkItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	workItemCache := cache.NewWorkItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt workitemEvents.WorkItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		// A freshly created item has never been updated, so the created
		// fields double as the updated fields.
		if err := workItemCache.Set(ctx, &cache.CachedWorkItem{
			ID:          evt.WorkItemID,
			TenantID:    evt.TenantID,
			Title:       evt.Title,
			Description: evt.Description,
			Status:      evt.Status,
			Priority:    evt.Priority,
			CreatedAt:   evt.OccurredAt,
			UpdatedAt:   evt.OccurredAt,
			CreatedBy:   evt.CreatedBy,
			UpdatedBy:   evt.CreatedBy,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for workitem.created",
				"work_item_id", evt.WorkItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"work_item_id", evt.WorkItemID, "tenant_id", evt.TenantID)
		}

		return nil
	}
}

// handleWorkItemsBulkTransitioned returns a handler for workitem.bulk_transitioned
// events. The event carries the requested id set, not per-item outcomes, so every
// id is invalidated and the next read repopulates from Postgres.
func handleWorkItemsBulkTransitioned(a *app.Application) func(context.Context, *message.Message) error {
	workItemCache := cache.NewWorkItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt workitemEvents.WorkItemsBulkTransitionedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		for _, id := range evt.WorkItemIDs {
			if err := workItemCache.Delete(ctx, evt.TenantID, id); err != nil {
				a.Logger.WarnContext(ctx, "cache invalidation failed for workitem.bulk_transitioned",
					"work_item_id", id, "error", err)
			}
		}

		a.Logger.InfoContext(ctx, "bulk transition processed",
			"tenant_id", evt.TenantID,
			"target_status", evt.TargetStatus,
			"updated_count", evt.UpdatedCount,
			"rejected_count", evt.RejectedCount,
			"correlation_id", evt.CorrelationID,
		)
		return nil
	}
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// TODO: query outbox table, publish unpublished events, mark as published
		}
	}
}
