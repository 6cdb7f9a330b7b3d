package article_store_port

import (
	"context"

	"flock/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=article_store_port.go -destination=../../mocks/mock_article_store_port.go -package=mocks

// KnownIdentifiers is the per-feed link/guid sets loaded once per ingestion
// cycle for the advisory dedup pre-check.
type KnownIdentifiers struct {
	Links map[string]struct{}
	GUIDs map[string]struct{}
}

type ArticleStorePort interface {
	LoadKnownIdentifiers(ctx context.Context, feedID uuid.UUID) (*KnownIdentifiers, error)

	// InsertArticle persists a new article and its group bindings. It
	// returns false when a uniqueness constraint on link, guid or content
	// hash already holds the item; that is not an error.
	InsertArticle(ctx context.Context, article *domain.Article) (bool, error)
}
