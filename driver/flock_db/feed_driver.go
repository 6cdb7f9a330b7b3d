package flock_db

import (
	"context"
	"errors"
	"time"

	"flock/domain"
	"flock/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const feedColumns = `
	f.id, f.url, f.title, f.site_link, f.language, f.is_active,
	f.status, f.update_frequency_minutes, f.last_fetched_at, f.next_fetch_at,
	f.last_error_message, f.last_error_at, f.consecutive_failures,
	f.fetch_count, f.error_count, f.total_articles, f.avg_articles_per_fetch,
	f.created_at, f.updated_at`

const getFeedByIDQuery = `
	SELECT` + feedColumns + `
	FROM feeds f
	WHERE f.id = $1`

// selectDueFeedsQuery orders by next_fetch_at ascending so long-overdue
// feeds cannot be starved when the corpus exceeds batch capacity.
const selectDueFeedsQuery = `
	SELECT` + feedColumns + `
	FROM feeds f
	WHERE f.is_active = true
	  AND f.status <> 'inactive'
	  AND f.next_fetch_at <= $1
	ORDER BY f.next_fetch_at ASC
	LIMIT $2`

const updateFeedHealthQuery = `
	UPDATE feeds
	SET status = $2,
		last_fetched_at = $3,
		next_fetch_at = $4,
		last_error_message = $5,
		last_error_at = $6,
		consecutive_failures = $7,
		fetch_count = $8,
		error_count = $9,
		total_articles = $10,
		avg_articles_per_fetch = $11,
		updated_at = now()
	WHERE id = $1`

const feedGroupIDsQuery = `
	SELECT group_id FROM group_feeds WHERE feed_id = $1`

func (r *FlockDBRepository) GetFeedByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	feed, err := scanFeed(r.pool.QueryRow(ctx, getFeedByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFeedNotFound
		}
		logger.SafeErrorContext(ctx, "Error fetching feed", "feed_id", id.String(), "error", err)
		return nil, databaseError("GetFeedByID", "failed to fetch feed", err, map[string]interface{}{"feed_id": id.String()})
	}

	feed.GroupIDs, err = r.getFeedGroupIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (r *FlockDBRepository) SelectDueFeeds(ctx context.Context, now time.Time, limit int) ([]*domain.Feed, error) {
	rows, err := r.pool.Query(ctx, selectDueFeedsQuery, now, limit)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error selecting due feeds", "error", err)
		return nil, databaseError("SelectDueFeeds", "failed to select due feeds", err, nil)
	}
	defer rows.Close()

	var feeds []*domain.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			logger.SafeErrorContext(ctx, "Error scanning due feed", "error", err)
			return nil, databaseError("SelectDueFeeds", "failed to scan due feed", err, nil)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, databaseError("SelectDueFeeds", "failed to iterate due feeds", err, nil)
	}

	for _, feed := range feeds {
		feed.GroupIDs, err = r.getFeedGroupIDs(ctx, feed.ID)
		if err != nil {
			return nil, err
		}
	}

	logger.SafeInfoContext(ctx, "Due feed selection summary", "selected", len(feeds), "limit", limit)
	return feeds, nil
}

func (r *FlockDBRepository) UpdateFeedHealth(ctx context.Context, id uuid.UUID, health domain.FeedHealth) error {
	var lastErrorMessage any
	if health.LastErrorMessage != "" {
		lastErrorMessage = health.LastErrorMessage
	}

	tag, err := r.pool.Exec(ctx, updateFeedHealthQuery,
		id,
		string(health.Status),
		health.LastFetchedAt,
		health.NextFetchAt,
		lastErrorMessage,
		health.LastErrorAt,
		health.ConsecutiveFailures,
		health.FetchCount,
		health.ErrorCount,
		health.TotalArticles,
		health.AverageArticlesPerFetch,
	)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error updating feed health", "feed_id", id.String(), "error", err)
		return databaseError("UpdateFeedHealth", "failed to update feed health", err, map[string]interface{}{"feed_id": id.String()})
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}
	return nil
}

// UpdateFeedHealthWithEvents persists a health transition and its outbox
// events in one transaction, so a refresh that lands always leaves its
// events behind and a rollback leaves neither.
func (r *FlockDBRepository) UpdateFeedHealthWithEvents(ctx context.Context, id uuid.UUID, health domain.FeedHealth, events []PendingOutboxEvent) error {
	var lastErrorMessage any
	if health.LastErrorMessage != "" {
		lastErrorMessage = health.LastErrorMessage
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return databaseError("UpdateFeedHealthWithEvents", "failed to begin transaction", err, map[string]interface{}{"feed_id": id.String()})
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, updateFeedHealthQuery,
		id,
		string(health.Status),
		health.LastFetchedAt,
		health.NextFetchAt,
		lastErrorMessage,
		health.LastErrorAt,
		health.ConsecutiveFailures,
		health.FetchCount,
		health.ErrorCount,
		health.TotalArticles,
		health.AverageArticlesPerFetch,
	)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error updating feed health", "feed_id", id.String(), "error", err)
		return databaseError("UpdateFeedHealthWithEvents", "failed to update feed health", err, map[string]interface{}{"feed_id": id.String()})
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}

	for _, event := range events {
		if err := r.SaveOutboxEventWithTx(ctx, tx, event.EventType, event.Payload); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return databaseError("UpdateFeedHealthWithEvents", "failed to commit transaction", err, map[string]interface{}{"feed_id": id.String()})
	}
	return nil
}

func (r *FlockDBRepository) getFeedGroupIDs(ctx context.Context, feedID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, feedGroupIDsQuery, feedID)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching feed group ids", "feed_id", feedID.String(), "error", err)
		return nil, databaseError("GetFeedByID", "failed to fetch feed group ids", err, map[string]interface{}{"feed_id": feedID.String()})
	}
	defer rows.Close()

	var groupIDs []uuid.UUID
	for rows.Next() {
		var groupID uuid.UUID
		if err := rows.Scan(&groupID); err != nil {
			return nil, databaseError("GetFeedByID", "failed to scan group id", err, nil)
		}
		groupIDs = append(groupIDs, groupID)
	}
	return groupIDs, rows.Err()
}

func scanFeed(row pgx.Row) (*domain.Feed, error) {
	var feed domain.Feed
	var status string
	var lastErrorMessage *string

	err := row.Scan(
		&feed.ID, &feed.URL, &feed.Title, &feed.SiteLink, &feed.Language, &feed.IsActive,
		&status, &feed.Health.UpdateFrequencyMinutes, &feed.Health.LastFetchedAt, &feed.Health.NextFetchAt,
		&lastErrorMessage, &feed.Health.LastErrorAt, &feed.Health.ConsecutiveFailures,
		&feed.Health.FetchCount, &feed.Health.ErrorCount, &feed.Health.TotalArticles, &feed.Health.AverageArticlesPerFetch,
		&feed.CreatedAt, &feed.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	feed.Health.Status = domain.FeedStatus(status)
	if lastErrorMessage != nil {
		feed.Health.LastErrorMessage = *lastErrorMessage
	}
	return &feed, nil
}
