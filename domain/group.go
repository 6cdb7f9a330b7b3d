package domain

import (
	"time"

	"github.com/google/uuid"
)

// GroupStats is the set of counters this core recomputes for a group after
// each ingestion touching one of its feeds. Concurrent recomputes converge
// because each is a deterministic function of current storage state.
type GroupStats struct {
	GroupID        uuid.UUID `json:"group_id" db:"group_id"`
	TotalFeeds     int       `json:"total_feeds" db:"total_feeds"`
	ActiveFeeds    int       `json:"active_feeds" db:"active_feeds"`
	TotalArticles  int64     `json:"total_articles" db:"total_articles"`
	UnreadArticles int64     `json:"unread_articles" db:"unread_articles"`
	ComputedAt     time.Time `json:"computed_at"`
}
