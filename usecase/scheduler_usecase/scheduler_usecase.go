package scheduler_usecase

import (
	"context"
	"sync"
	"time"

	"flock/domain"
	"flock/port/feed_store_port"
	apperrors "flock/utils/errors"
	"flock/utils/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FeedRefresher runs one ingestion cycle for a feed. Satisfied by
// ingest_feed_usecase.IngestFeedUsecase.
type FeedRefresher interface {
	Execute(ctx context.Context, feedID uuid.UUID) (*domain.FeedRefreshResult, error)
}

// SchedulerUsecase selects due feeds and refreshes them with bounded
// concurrency. One feed's failure never aborts the batch.
type SchedulerUsecase struct {
	feedStore   feed_store_port.FeedStorePort
	refresher   FeedRefresher
	batchSize   int
	workerLimit int

	now func() time.Time
}

func NewSchedulerUsecase(feedStore feed_store_port.FeedStorePort, refresher FeedRefresher, batchSize, workerLimit int) *SchedulerUsecase {
	if batchSize <= 0 {
		batchSize = 10
	}
	if workerLimit <= 0 {
		workerLimit = 1
	}
	return &SchedulerUsecase{
		feedStore:   feedStore,
		refresher:   refresher,
		batchSize:   batchSize,
		workerLimit: workerLimit,
		now:         time.Now,
	}
}

// Tick runs one scheduler pass: select up to batchSize due feeds, refresh
// each, and report the partitioned outcome. batchSize <= 0 falls back to the
// configured default.
func (u *SchedulerUsecase) Tick(ctx context.Context, batchSize int) (*domain.BatchResult, error) {
	if batchSize <= 0 {
		batchSize = u.batchSize
	}
	now := u.now()

	due, err := u.feedStore.SelectDueFeeds(ctx, now, batchSize)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to select due feeds", "error", err)
		return nil, err
	}
	if len(due) == 0 {
		return &domain.BatchResult{}, nil
	}

	logger.SafeInfoContext(ctx, "scheduler tick started", "due_feeds", len(due), "worker_limit", u.workerLimit)

	result := &domain.BatchResult{}
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.workerLimit)
	for _, feed := range due {
		feed := feed
		group.Go(func() error {
			refresh, err := u.refresher.Execute(groupCtx, feed.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				retryable := false
				if appErr, ok := apperrors.AsAppContextError(err); ok {
					retryable = appErr.IsRetryable()
				}
				logger.SafeWarnContext(groupCtx, "feed refresh failed in batch",
					"feed_id", feed.ID, "retryable", retryable, "error", err)

				result.Failed = append(result.Failed, domain.FeedRefreshFailure{
					FeedID: feed.ID,
					Reason: err.Error(),
				})
				// The failure is recorded in the batch result, not
				// propagated: propagating would cancel the sibling
				// refreshes.
				return nil
			}
			result.Succeeded = append(result.Succeeded, *refresh)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.SafeInfoContext(ctx, "scheduler tick finished",
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
	)
	return result, nil
}

// RefreshOne refreshes a single feed immediately, outside the due-feed
// selection.
func (u *SchedulerUsecase) RefreshOne(ctx context.Context, feedID uuid.UUID) (*domain.FeedRefreshResult, error) {
	return u.refresher.Execute(ctx, feedID)
}
