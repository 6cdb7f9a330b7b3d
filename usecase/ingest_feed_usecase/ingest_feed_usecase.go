package ingest_feed_usecase

import (
	"context"
	"time"

	"flock/domain"
	"flock/port/article_store_port"
	"flock/port/feed_fetch_port"
	"flock/port/feed_store_port"
	"flock/port/group_stats_port"
	"flock/utils/content_hash"
	"flock/utils/logger"
	"flock/utils/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// IngestFeedUsecase runs one full refresh cycle for a feed: fetch, dedupe,
// persist new articles, advance the health state machine, recompute group
// counters and record the outbound events. Events are written to the outbox
// in the same transaction as the health transition.
type IngestFeedUsecase struct {
	feedStore    feed_store_port.FeedStorePort
	articleStore article_store_port.ArticleStorePort
	groupStats   group_stats_port.GroupStatsPort
	fetcher      feed_fetch_port.FeedFetchPort
	metrics      *metrics.IngestionMetrics

	firstFetchLimit   int
	refreshFetchLimit int

	// inflight collapses concurrent refreshes of the same feed into one
	// cycle; latecomers get the shared result.
	inflight singleflight.Group

	now func() time.Time
}

func NewIngestFeedUsecase(
	feedStore feed_store_port.FeedStorePort,
	articleStore article_store_port.ArticleStorePort,
	groupStats group_stats_port.GroupStatsPort,
	fetcher feed_fetch_port.FeedFetchPort,
	ingestionMetrics *metrics.IngestionMetrics,
	firstFetchLimit int,
	refreshFetchLimit int,
) *IngestFeedUsecase {
	if firstFetchLimit <= 0 {
		firstFetchLimit = domain.FirstFetchItemLimit
	}
	if refreshFetchLimit <= 0 {
		refreshFetchLimit = domain.RefreshItemLimit
	}

	return &IngestFeedUsecase{
		feedStore:         feedStore,
		articleStore:      articleStore,
		groupStats:        groupStats,
		fetcher:           fetcher,
		metrics:           ingestionMetrics,
		firstFetchLimit:   firstFetchLimit,
		refreshFetchLimit: refreshFetchLimit,
		now:               time.Now,
	}
}

// Execute refreshes the feed identified by feedID. Concurrent calls for the
// same feed share one cycle; the result of a shared call is marked as such.
func (u *IngestFeedUsecase) Execute(ctx context.Context, feedID uuid.UUID) (*domain.FeedRefreshResult, error) {
	value, err, shared := u.inflight.Do(feedID.String(), func() (interface{}, error) {
		// The cycle serves every waiter, so it must not die with the
		// first caller's request.
		return u.ingest(context.WithoutCancel(ctx), feedID)
	})
	if err != nil {
		return nil, err
	}

	// Copy before flagging: the singleflight result is handed to every
	// waiter.
	result := *value.(*domain.FeedRefreshResult)
	result.Shared = shared
	return &result, nil
}

func (u *IngestFeedUsecase) ingest(ctx context.Context, feedID uuid.UUID) (*domain.FeedRefreshResult, error) {
	start := u.now()

	feed, err := u.feedStore.GetFeedByID(ctx, feedID)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to load feed for refresh", "feed_id", feedID, "error", err)
		return nil, err
	}
	if !feed.Schedulable() {
		logger.SafeWarnContext(ctx, "refusing to refresh inactive feed", "feed_id", feedID, "status", feed.Health.Status)
		return nil, domain.ErrFeedInactive
	}

	itemLimit := u.refreshFetchLimit
	if feed.Health.FetchCount == 0 {
		itemLimit = u.firstFetchLimit
	}

	doc, err := u.fetcher.Fetch(ctx, feed.URL, itemLimit)
	if err != nil {
		return nil, u.recordFailure(ctx, feed, start, err)
	}

	persisted, err := u.persistNewArticles(ctx, feed, doc)
	if err != nil {
		// Storage failures are not feed failures: the health record stays
		// untouched so the feed is retried on its normal schedule.
		logger.SafeErrorContext(ctx, "failed to persist articles", "feed_id", feed.ID, "error", err)
		return nil, err
	}

	now := u.now()
	health := feed.Health.ApplySuccess(now, persisted)
	records := []domain.OutboxRecord{{
		EventType: domain.EventFeedRefreshed,
		Payload: domain.FeedRefreshedEvent{
			FeedID:          feed.ID,
			GroupIDs:        feed.GroupIDs,
			NewArticleCount: persisted,
		},
	}}
	if err := u.feedStore.UpdateFeedHealthWithEvents(ctx, feed.ID, health, records); err != nil {
		logger.SafeErrorContext(ctx, "failed to persist feed health", "feed_id", feed.ID, "error", err)
		return nil, err
	}

	u.recomputeGroups(ctx, feed)

	elapsed := u.now().Sub(start)
	if u.metrics != nil {
		u.metrics.RecordSuccess(persisted, elapsed)
	}

	logger.SafeInfoContext(ctx, "feed refreshed",
		"feed_id", feed.ID,
		"new_articles", persisted,
		"fetched_items", len(doc.Items),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &domain.FeedRefreshResult{
		FeedID:          feed.ID,
		Status:          health.Status,
		NewArticleCount: persisted,
		Duration:        elapsed,
	}, nil
}

// persistNewArticles filters the fetched items against the feed's known
// identifiers and inserts the survivors, returning the count that actually
// landed. The conflict-swallowing insert keeps the count honest under races.
func (u *IngestFeedUsecase) persistNewArticles(ctx context.Context, feed *domain.Feed, doc *domain.FeedDocument) (int, error) {
	known, err := u.articleStore.LoadKnownIdentifiers(ctx, feed.ID)
	if err != nil {
		return 0, err
	}

	fresh := FilterNew(doc.Items, known)

	persisted := 0
	for _, candidate := range fresh {
		article := u.buildArticle(feed, candidate)
		inserted, err := u.articleStore.InsertArticle(ctx, article)
		if err != nil {
			return persisted, err
		}
		if inserted {
			persisted++
		}
	}
	return persisted, nil
}

func (u *IngestFeedUsecase) buildArticle(feed *domain.Feed, candidate domain.CandidateItem) *domain.Article {
	publishedAt := u.now()
	if candidate.PublishedAt != nil {
		publishedAt = *candidate.PublishedAt
	}

	return &domain.Article{
		ID:          uuid.New(),
		FeedID:      feed.ID,
		Title:       candidate.Title,
		Author:      candidate.Author,
		Body:        candidate.Body,
		Summary:     candidate.Summary,
		Link:        candidate.Link,
		GUID:        candidate.GUID,
		ContentHash: content_hash.Fingerprint(candidate.Title, candidate.Body, candidate.Link),
		MediaURL:    candidate.MediaURL,
		Categories:  candidate.Categories,
		PublishedAt: publishedAt,
		GroupIDs:    feed.GroupIDs,
	}
}

// recordFailure advances the failure state machine and queues the error
// events with the transition. The original fetch error is returned so
// callers see the cause, not the bookkeeping.
func (u *IngestFeedUsecase) recordFailure(ctx context.Context, feed *domain.Feed, start time.Time, fetchErr error) error {
	now := u.now()
	health := feed.Health.ApplyFailure(now, fetchErr.Error())

	records := []domain.OutboxRecord{{
		EventType: domain.EventFeedErrored,
		Payload: domain.FeedErroredEvent{
			FeedID:              feed.ID,
			Reason:              fetchErr.Error(),
			ConsecutiveAttempts: health.ConsecutiveFailures,
		},
	}}
	if health.Status == domain.FeedStatusInactive {
		logger.SafeWarnContext(ctx, "feed disabled after repeated failures",
			"feed_id", feed.ID,
			"consecutive_failures", health.ConsecutiveFailures,
		)
		records = append(records, domain.OutboxRecord{
			EventType: domain.EventFeedDisabled,
			Payload:   domain.FeedDisabledEvent{FeedID: feed.ID},
		})
	}

	if err := u.feedStore.UpdateFeedHealthWithEvents(ctx, feed.ID, health, records); err != nil {
		logger.SafeErrorContext(ctx, "failed to persist feed health after fetch failure", "feed_id", feed.ID, "error", err)
		return err
	}

	if u.metrics != nil {
		u.metrics.RecordFailure(u.now().Sub(start))
	}

	logger.SafeWarnContext(ctx, "feed refresh failed",
		"feed_id", feed.ID,
		"consecutive_failures", health.ConsecutiveFailures,
		"next_fetch_at", health.NextFetchAt,
		"error", fetchErr,
	)
	return fetchErr
}

// recomputeGroups refreshes the counters of every group the feed belongs to.
// A recompute failure is logged but never fails the cycle; the counters catch
// up on the next ingestion touching the group.
func (u *IngestFeedUsecase) recomputeGroups(ctx context.Context, feed *domain.Feed) {
	for _, groupID := range feed.GroupIDs {
		if _, err := u.groupStats.RecomputeGroupStats(ctx, groupID); err != nil {
			logger.SafeErrorContext(ctx, "failed to recompute group stats",
				"feed_id", feed.ID,
				"group_id", groupID,
				"error", err,
			)
		}
	}
}
