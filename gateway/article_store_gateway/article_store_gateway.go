package article_store_gateway

import (
	"context"
	"errors"

	"flock/domain"
	"flock/driver/flock_db"
	"flock/port/article_store_port"

	"github.com/google/uuid"
)

// ArticleStoreGateway adapts the article drivers to the article store port.
type ArticleStoreGateway struct {
	flock_db *flock_db.FlockDBRepository
}

func NewArticleStoreGateway(pool flock_db.DBPool) *ArticleStoreGateway {
	return &ArticleStoreGateway{flock_db: flock_db.NewFlockDBRepository(pool)}
}

func (g *ArticleStoreGateway) LoadKnownIdentifiers(ctx context.Context, feedID uuid.UUID) (*article_store_port.KnownIdentifiers, error) {
	if g.flock_db == nil {
		return nil, errors.New("database connection not available")
	}
	return g.flock_db.LoadKnownIdentifiers(ctx, feedID)
}

func (g *ArticleStoreGateway) InsertArticle(ctx context.Context, article *domain.Article) (bool, error) {
	if g.flock_db == nil {
		return false, errors.New("database connection not available")
	}
	return g.flock_db.InsertArticle(ctx, article)
}
