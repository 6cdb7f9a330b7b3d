package reset_feed_usecase

import (
	"context"
	"time"

	"flock/domain"
	"flock/port/feed_store_port"
	"flock/utils/logger"

	"github.com/google/uuid"
)

// ResetFeedHealthUsecase is the operator override for a disabled or backing
// off feed: failure state is cleared and the feed becomes immediately due.
type ResetFeedHealthUsecase struct {
	feedStore feed_store_port.FeedStorePort

	now func() time.Time
}

func NewResetFeedHealthUsecase(feedStore feed_store_port.FeedStorePort) *ResetFeedHealthUsecase {
	return &ResetFeedHealthUsecase{
		feedStore: feedStore,
		now:       time.Now,
	}
}

// Execute resets the feed's health and returns the feed carrying the new
// state.
func (u *ResetFeedHealthUsecase) Execute(ctx context.Context, feedID uuid.UUID) (*domain.Feed, error) {
	feed, err := u.feedStore.GetFeedByID(ctx, feedID)
	if err != nil {
		return nil, err
	}

	health := feed.Health.Reset(u.now())
	if err := u.feedStore.UpdateFeedHealth(ctx, feed.ID, health); err != nil {
		logger.SafeErrorContext(ctx, "failed to persist reset feed health", "feed_id", feed.ID, "error", err)
		return nil, err
	}

	logger.SafeInfoContext(ctx, "feed health reset",
		"feed_id", feed.ID,
		"previous_status", feed.Health.Status,
		"previous_consecutive_failures", feed.Health.ConsecutiveFailures,
	)

	feed.Health = health
	return feed, nil
}
