package job

import (
	"context"
	"time"

	"flock/driver/flock_db"
	"flock/port/notifier_port"
	"flock/utils/logger"
)

// OutboxStore is the slice of the repository the outbox worker needs.
type OutboxStore interface {
	FetchAndLockPendingOutboxEvents(ctx context.Context, limit int) ([]flock_db.OutboxEvent, error)
	UpdateOutboxEventStatus(ctx context.Context, id string, status string, errorMessage *string) error
	PruneOutboxEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}

// OutboxWorkerJob returns a JobScheduler function that drains pending outbox
// events to the notifier. Delivery is at least once: an event whose delivery
// fails is marked FAILED with the reason and left for inspection.
func OutboxWorkerJob(store OutboxStore, notifier notifier_port.NotifierPort, batchSize int) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return drainOutbox(ctx, store, notifier, batchSize)
	}
}

func drainOutbox(ctx context.Context, store OutboxStore, notifier notifier_port.NotifierPort, batchSize int) error {
	events, err := store.FetchAndLockPendingOutboxEvents(ctx, batchSize)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch pending outbox events", "error", err)
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.SafeInfoContext(ctx, "processing outbox events", "count", len(events))

	for _, event := range events {
		if err := notifier.Deliver(ctx, event.EventType, event.Payload); err != nil {
			logger.SafeErrorContext(ctx, "failed to deliver outbox event",
				"event_id", event.ID,
				"event_type", event.EventType,
				"error", err,
			)
			markOutboxEvent(ctx, store, event.ID, "FAILED", err.Error())
			continue
		}
		markOutboxEvent(ctx, store, event.ID, "PROCESSED", "")
	}
	return nil
}

func markOutboxEvent(ctx context.Context, store OutboxStore, id, status, errMsg string) {
	var errPtr *string
	if errMsg != "" {
		errPtr = &errMsg
	}
	if err := store.UpdateOutboxEventStatus(ctx, id, status, errPtr); err != nil {
		logger.SafeErrorContext(ctx, "failed to update outbox event status", "event_id", id, "status", status, "error", err)
	}
}

// OutboxPruneJob returns a JobScheduler function that deletes processed
// events older than the retention window.
func OutboxPruneJob(store OutboxStore, retention time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pruned, err := store.PruneOutboxEvents(ctx, retention)
		if err != nil {
			logger.SafeErrorContext(ctx, "failed to prune outbox events", "error", err)
			return err
		}
		if pruned > 0 {
			logger.SafeInfoContext(ctx, "pruned processed outbox events", "count", pruned)
		}
		return nil
	}
}
