package flock_db

import (
	"context"
	"time"

	"flock/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const insertOutboxQuery = `
	INSERT INTO outbox_events (event_type, payload)
	VALUES ($1, $2)`

// OutboxEvent represents a row in the outbox_events table.
type OutboxEvent struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	Payload   []byte    `json:"payload"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingOutboxEvent is an event to be inserted alongside a state change.
type PendingOutboxEvent struct {
	EventType string
	Payload   []byte
}

// SaveOutboxEvent inserts a pending event into the outbox table.
func (r *FlockDBRepository) SaveOutboxEvent(ctx context.Context, eventType string, payload []byte) error {
	if _, err := r.pool.Exec(ctx, insertOutboxQuery, eventType, payload); err != nil {
		logger.SafeErrorContext(ctx, "failed to save outbox event", "event_type", eventType, "error", err)
		return databaseError("SaveOutboxEvent", "failed to insert outbox event", err, map[string]interface{}{"event_type": eventType})
	}
	return nil
}

// SaveOutboxEventWithTx inserts an event into the outbox table using a provided transaction.
func (r *FlockDBRepository) SaveOutboxEventWithTx(ctx context.Context, tx pgx.Tx, eventType string, payload []byte) error {
	if _, err := tx.Exec(ctx, insertOutboxQuery, eventType, payload); err != nil {
		logger.SafeErrorContext(ctx, "failed to save outbox event", "event_type", eventType, "error", err)
		return databaseError("SaveOutboxEventWithTx", "failed to insert outbox event", err, map[string]interface{}{"event_type": eventType})
	}
	return nil
}

// FetchAndLockPendingOutboxEvents retrieves pending events within a transaction,
// locks them with FOR UPDATE SKIP LOCKED, and atomically sets status to PROCESSING.
// This prevents multiple workers from processing the same event.
func (r *FlockDBRepository) FetchAndLockPendingOutboxEvents(ctx context.Context, limit int) ([]OutboxEvent, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, databaseError("FetchAndLockPendingOutboxEvents", "failed to begin transaction", err, nil)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT id, event_type, payload, status, created_at
		FROM outbox_events
		WHERE status = 'PENDING'
		ORDER BY created_at ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`, limit)
	if err != nil {
		return nil, databaseError("FetchAndLockPendingOutboxEvents", "failed to fetch pending outbox events", err, nil)
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		var id uuid.UUID
		if err := rows.Scan(&id, &e.EventType, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, databaseError("FetchAndLockPendingOutboxEvents", "failed to scan outbox event", err, nil)
		}
		e.ID = id.String()
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, databaseError("FetchAndLockPendingOutboxEvents", "failed to iterate outbox events", err, nil)
	}

	// Atomically mark all selected events as PROCESSING within the same transaction
	for _, e := range events {
		if _, err := tx.Exec(ctx, `UPDATE outbox_events SET status = 'PROCESSING' WHERE id = $1`, e.ID); err != nil {
			return nil, databaseError("FetchAndLockPendingOutboxEvents", "failed to mark event as PROCESSING", err, map[string]interface{}{"event_id": e.ID})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, databaseError("FetchAndLockPendingOutboxEvents", "failed to commit transaction", err, nil)
	}

	return events, nil
}

// UpdateOutboxEventStatus updates the status of an outbox event.
func (r *FlockDBRepository) UpdateOutboxEventStatus(ctx context.Context, id string, status string, errorMessage *string) error {
	var processedAt interface{}
	if status == "PROCESSED" || status == "FAILED" {
		processedAt = time.Now()
	}

	query := `
		UPDATE outbox_events
		SET status = $1, processed_at = $2, error_message = $3
		WHERE id = $4
	`

	if _, err := r.pool.Exec(ctx, query, status, processedAt, errorMessage, id); err != nil {
		return databaseError("UpdateOutboxEventStatus", "failed to update outbox event status", err, map[string]interface{}{"event_id": id})
	}

	return nil
}

// PruneOutboxEvents deletes processed events older than the specified duration.
func (r *FlockDBRepository) PruneOutboxEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM outbox_events WHERE status = 'PROCESSED' AND processed_at < $1`
	cutoff := time.Now().Add(-olderThan)

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, databaseError("PruneOutboxEvents", "failed to prune outbox events", err, nil)
	}
	return tag.RowsAffected(), nil
}
