package feed_store_gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flock/domain"
	"flock/driver/flock_db"

	"github.com/google/uuid"
)

// FeedStoreGateway adapts the feed drivers to the feed store port.
type FeedStoreGateway struct {
	flock_db *flock_db.FlockDBRepository
}

func NewFeedStoreGateway(pool flock_db.DBPool) *FeedStoreGateway {
	return &FeedStoreGateway{flock_db: flock_db.NewFlockDBRepository(pool)}
}

func (g *FeedStoreGateway) GetFeedByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	if g.flock_db == nil {
		return nil, errors.New("database connection not available")
	}
	return g.flock_db.GetFeedByID(ctx, id)
}

func (g *FeedStoreGateway) SelectDueFeeds(ctx context.Context, now time.Time, limit int) ([]*domain.Feed, error) {
	if g.flock_db == nil {
		return nil, errors.New("database connection not available")
	}
	return g.flock_db.SelectDueFeeds(ctx, now, limit)
}

func (g *FeedStoreGateway) UpdateFeedHealth(ctx context.Context, id uuid.UUID, health domain.FeedHealth) error {
	if g.flock_db == nil {
		return errors.New("database connection not available")
	}
	return g.flock_db.UpdateFeedHealth(ctx, id, health)
}

// UpdateFeedHealthWithEvents marshals the event payloads and hands the
// health transition plus outbox rows to the driver as one transaction.
func (g *FeedStoreGateway) UpdateFeedHealthWithEvents(ctx context.Context, id uuid.UUID, health domain.FeedHealth, events []domain.OutboxRecord) error {
	if g.flock_db == nil {
		return errors.New("database connection not available")
	}

	pending := make([]flock_db.PendingOutboxEvent, 0, len(events))
	for _, record := range events {
		payload, err := json.Marshal(record.Payload)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", record.EventType, err)
		}
		pending = append(pending, flock_db.PendingOutboxEvent{
			EventType: record.EventType,
			Payload:   payload,
		})
	}

	return g.flock_db.UpdateFeedHealthWithEvents(ctx, id, health, pending)
}
