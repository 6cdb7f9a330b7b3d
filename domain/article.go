package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is one ingested feed item. Articles are created once at ingestion
// and never re-fetched by this subsystem.
type Article struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FeedID      uuid.UUID `json:"feed_id" db:"feed_id"`
	Title       string    `json:"title" db:"title"`
	Author      string    `json:"author" db:"author"`
	Body        string    `json:"body" db:"body"`
	Summary     string    `json:"summary" db:"summary"`
	Link        string    `json:"link" db:"link"` // unique
	GUID        string    `json:"guid,omitempty" db:"guid"` // unique when present
	ContentHash string    `json:"content_hash" db:"content_hash"` // unique
	MediaURL    string    `json:"media_url,omitempty" db:"media_url"`
	Categories  []string  `json:"categories,omitempty" db:"categories"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// GroupIDs is the set of groups the article is visible in, fixed to the
	// feed's membership at ingestion time.
	GroupIDs []uuid.UUID `json:"group_ids"`
}
