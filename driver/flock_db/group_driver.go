package flock_db

import (
	"context"
	"time"

	"flock/domain"
	"flock/utils/logger"

	"github.com/google/uuid"
)

const groupFeedCountsQuery = `
	SELECT count(*),
	       count(*) FILTER (WHERE f.is_active AND f.status = 'active')
	FROM group_feeds gf
	JOIN feeds f ON f.id = gf.feed_id
	WHERE gf.group_id = $1`

const groupArticleCountQuery = `
	SELECT count(*)
	FROM articles a
	JOIN group_feeds gf ON gf.feed_id = a.feed_id
	WHERE gf.group_id = $1`

// Unread means no reader at all has marked the article, a group-level
// coarse counter rather than a per-member one.
const groupUnreadCountQuery = `
	SELECT count(*)
	FROM articles a
	JOIN group_feeds gf ON gf.feed_id = a.feed_id
	WHERE gf.group_id = $1
	  AND NOT EXISTS (SELECT 1 FROM article_reads ar WHERE ar.article_id = a.id)`

const updateGroupStatsQuery = `
	UPDATE groups
	SET total_feeds = $2,
		active_feeds = $3,
		total_articles = $4,
		unread_articles = $5,
		updated_at = now()
	WHERE id = $1`

// RecomputeGroupStats derives the four group counters from current storage
// state and writes them back. Concurrent recomputes are last-writer-wins and
// converge because the inputs are the same storage state.
func (r *FlockDBRepository) RecomputeGroupStats(ctx context.Context, groupID uuid.UUID) (*domain.GroupStats, error) {
	stats := &domain.GroupStats{GroupID: groupID, ComputedAt: time.Now().UTC()}

	err := r.pool.QueryRow(ctx, groupFeedCountsQuery, groupID).Scan(&stats.TotalFeeds, &stats.ActiveFeeds)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error counting group feeds", "group_id", groupID.String(), "error", err)
		return nil, databaseError("RecomputeGroupStats", "failed to count group feeds", err, map[string]interface{}{"group_id": groupID.String()})
	}

	if err := r.pool.QueryRow(ctx, groupArticleCountQuery, groupID).Scan(&stats.TotalArticles); err != nil {
		logger.SafeErrorContext(ctx, "Error counting group articles", "group_id", groupID.String(), "error", err)
		return nil, databaseError("RecomputeGroupStats", "failed to count group articles", err, map[string]interface{}{"group_id": groupID.String()})
	}

	if err := r.pool.QueryRow(ctx, groupUnreadCountQuery, groupID).Scan(&stats.UnreadArticles); err != nil {
		logger.SafeErrorContext(ctx, "Error counting unread articles", "group_id", groupID.String(), "error", err)
		return nil, databaseError("RecomputeGroupStats", "failed to count unread articles", err, map[string]interface{}{"group_id": groupID.String()})
	}

	tag, err := r.pool.Exec(ctx, updateGroupStatsQuery, groupID,
		stats.TotalFeeds, stats.ActiveFeeds, stats.TotalArticles, stats.UnreadArticles)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error updating group stats", "group_id", groupID.String(), "error", err)
		return nil, databaseError("RecomputeGroupStats", "failed to update group stats", err, map[string]interface{}{"group_id": groupID.String()})
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrGroupNotFound
	}

	logger.SafeInfoContext(ctx, "Group stats recomputed",
		"group_id", groupID.String(),
		"total_feeds", stats.TotalFeeds,
		"active_feeds", stats.ActiveFeeds,
		"total_articles", stats.TotalArticles,
		"unread_articles", stats.UnreadArticles)

	return stats, nil
}
