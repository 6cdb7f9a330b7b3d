package domain

import "github.com/google/uuid"

// Outbound event types consumed by the notification collaborators. Events
// are written to the outbox in the same unit of work as the state change and
// are delivered at least once.
const (
	EventFeedRefreshed = "FEED_REFRESHED"
	EventFeedErrored   = "FEED_ERRORED"
	EventFeedDisabled  = "FEED_DISABLED"
)

// FeedRefreshedEvent announces newly ingested articles for a feed.
type FeedRefreshedEvent struct {
	FeedID          uuid.UUID   `json:"feed_id"`
	GroupIDs        []uuid.UUID `json:"group_ids"`
	NewArticleCount int         `json:"new_article_count"`
}

// FeedErroredEvent announces a failed refresh cycle.
type FeedErroredEvent struct {
	FeedID              uuid.UUID `json:"feed_id"`
	Reason              string    `json:"reason"`
	ConsecutiveAttempts int       `json:"consecutive_attempts"`
}

// FeedDisabledEvent announces that a feed hit the auto-disable threshold.
type FeedDisabledEvent struct {
	FeedID uuid.UUID `json:"feed_id"`
}

// OutboxRecord is an event queued for the outbox alongside a state change.
// The store persists the record in the same transaction as the change, so
// the event exists if and only if the change does.
type OutboxRecord struct {
	EventType string
	Payload   any
}
