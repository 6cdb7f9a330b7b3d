package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedRefreshResult summarizes one ingestion cycle for one feed.
type FeedRefreshResult struct {
	FeedID          uuid.UUID  `json:"feed_id"`
	Status          FeedStatus `json:"status"`
	NewArticleCount int        `json:"new_article_count"`
	Shared          bool       `json:"shared"` // true when a concurrent trigger's result was reused
	Duration        time.Duration `json:"duration"`
}

// FeedRefreshFailure records a feed whose cycle failed within a batch.
type FeedRefreshFailure struct {
	FeedID uuid.UUID `json:"feed_id"`
	Reason string    `json:"reason"`
}

// BatchResult is the partitioned outcome of one scheduler tick. A failed
// feed never aborts the batch; it lands here instead.
type BatchResult struct {
	Succeeded []FeedRefreshResult  `json:"succeeded"`
	Failed    []FeedRefreshFailure `json:"failed"`
}
