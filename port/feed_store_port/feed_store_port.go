package feed_store_port

import (
	"context"
	"time"

	"flock/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_store_port.go -destination=../../mocks/mock_feed_store_port.go -package=mocks

type FeedStorePort interface {
	GetFeedByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error)

	// SelectDueFeeds returns up to limit schedulable feeds whose next fetch
	// time has passed, most overdue first.
	SelectDueFeeds(ctx context.Context, now time.Time, limit int) ([]*domain.Feed, error)

	UpdateFeedHealth(ctx context.Context, id uuid.UUID, health domain.FeedHealth) error

	// UpdateFeedHealthWithEvents persists the health transition and queues
	// the given outbox events atomically. Either both land or neither does.
	UpdateFeedHealthWithEvents(ctx context.Context, id uuid.UUID, health domain.FeedHealth, events []domain.OutboxRecord) error
}
