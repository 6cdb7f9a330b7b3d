package flock_db

import (
	"context"
	"errors"

	"flock/domain"
	"flock/port/article_store_port"
	"flock/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const knownIdentifiersQuery = `
	SELECT link, guid FROM articles WHERE feed_id = $1`

// insertArticleQuery relies on the unique indexes on link, guid and
// content_hash. ON CONFLICT DO NOTHING makes a concurrent duplicate insert
// observe zero returned rows instead of an error; that is the race-safety
// boundary, the in-memory pre-check is only advisory.
const insertArticleQuery = `
	INSERT INTO articles (id, feed_id, title, author, body, summary, link, guid, content_hash, media_url, categories, published_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
	ON CONFLICT DO NOTHING
	RETURNING id`

const insertArticleGroupQuery = `
	INSERT INTO article_groups (article_id, group_id)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING`

func (r *FlockDBRepository) LoadKnownIdentifiers(ctx context.Context, feedID uuid.UUID) (*article_store_port.KnownIdentifiers, error) {
	rows, err := r.pool.Query(ctx, knownIdentifiersQuery, feedID)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error loading known identifiers", "feed_id", feedID.String(), "error", err)
		return nil, databaseError("LoadKnownIdentifiers", "failed to load known identifiers", err, map[string]interface{}{"feed_id": feedID.String()})
	}
	defer rows.Close()

	known := &article_store_port.KnownIdentifiers{
		Links: make(map[string]struct{}),
		GUIDs: make(map[string]struct{}),
	}
	for rows.Next() {
		var link string
		var guid *string
		if err := rows.Scan(&link, &guid); err != nil {
			return nil, databaseError("LoadKnownIdentifiers", "failed to scan known identifiers", err, nil)
		}
		known.Links[link] = struct{}{}
		if guid != nil && *guid != "" {
			known.GUIDs[*guid] = struct{}{}
		}
	}
	return known, rows.Err()
}

func (r *FlockDBRepository) InsertArticle(ctx context.Context, article *domain.Article) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error starting transaction", "error", err)
		return false, databaseError("InsertArticle", "failed to begin transaction", err, nil)
	}
	defer tx.Rollback(ctx)

	var guid any
	if article.GUID != "" {
		guid = article.GUID
	}

	var insertedID uuid.UUID
	err = tx.QueryRow(ctx, insertArticleQuery,
		article.ID, article.FeedID, article.Title, article.Author, article.Body,
		article.Summary, article.Link, guid, article.ContentHash,
		article.MediaURL, article.Categories, article.PublishedAt,
	).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A link/guid/hash constraint already holds this item.
			logger.SafeInfoContext(ctx, "Article already exists, skipping",
				"feed_id", article.FeedID.String(), "link", article.Link)
			return false, nil
		}
		logger.SafeErrorContext(ctx, "Error inserting article", "link", article.Link, "error", err)
		return false, databaseError("InsertArticle", "failed to insert article", err, map[string]interface{}{"link": article.Link})
	}

	for _, groupID := range article.GroupIDs {
		if _, err := tx.Exec(ctx, insertArticleGroupQuery, insertedID, groupID); err != nil {
			logger.SafeErrorContext(ctx, "Error binding article to group",
				"article_id", insertedID.String(), "group_id", groupID.String(), "error", err)
			return false, databaseError("InsertArticle", "failed to bind article to group", err, map[string]interface{}{"group_id": groupID.String()})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "Error committing article insert", "error", err)
		return false, databaseError("InsertArticle", "failed to commit article insert", err, nil)
	}

	return true, nil
}
