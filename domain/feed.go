package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeedStatus is the health state of a subscribed feed.
type FeedStatus string

const (
	FeedStatusPending  FeedStatus = "pending"
	FeedStatusActive   FeedStatus = "active"
	FeedStatusError    FeedStatus = "error"
	FeedStatusInactive FeedStatus = "inactive"
)

const (
	// MinUpdateFrequencyMinutes and MaxUpdateFrequencyMinutes bound the
	// per-feed polling interval.
	MinUpdateFrequencyMinutes = 5
	MaxUpdateFrequencyMinutes = 1440

	// MaxBackoffMinutes caps the failure backoff delay at 24 hours.
	MaxBackoffMinutes = 1440

	// MaxConsecutiveFailures is the auto-disable threshold.
	MaxConsecutiveFailures = 5
)

// Feed represents one subscribed RSS/Atom source.
type Feed struct {
	ID       uuid.UUID `json:"id" db:"id"`
	URL      string    `json:"url" db:"url"`       // Feed URL, unique
	Title    string    `json:"title" db:"title"`
	SiteLink string    `json:"site_link" db:"site_link"` // Website URL
	Language string    `json:"language" db:"language"`
	IsActive bool      `json:"is_active" db:"is_active"`

	Health FeedHealth `json:"health"`

	// GroupIDs is the set of groups this feed is attached to. Membership is
	// written by the group service; this core only reads it.
	GroupIDs []uuid.UUID `json:"group_ids"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FeedHealth carries the scheduling and failure state of a feed.
type FeedHealth struct {
	Status                  FeedStatus `json:"status" db:"status"`
	UpdateFrequencyMinutes  int        `json:"update_frequency_minutes" db:"update_frequency_minutes"`
	LastFetchedAt           *time.Time `json:"last_fetched_at" db:"last_fetched_at"`
	NextFetchAt             time.Time  `json:"next_fetch_at" db:"next_fetch_at"`
	LastErrorMessage        string     `json:"last_error_message,omitempty" db:"last_error_message"`
	LastErrorAt             *time.Time `json:"last_error_at,omitempty" db:"last_error_at"`
	ConsecutiveFailures     int        `json:"consecutive_failures" db:"consecutive_failures"`
	FetchCount              int64      `json:"fetch_count" db:"fetch_count"`
	ErrorCount              int64      `json:"error_count" db:"error_count"`
	TotalArticles           int64      `json:"total_articles" db:"total_articles"`
	AverageArticlesPerFetch float64    `json:"average_articles_per_fetch" db:"avg_articles_per_fetch"`
}

// Schedulable reports whether the scheduler may select this feed at all.
// Inactive feeds are terminal until an explicit reset.
func (f *Feed) Schedulable() bool {
	return f.IsActive && f.Health.Status != FeedStatusInactive
}

// Due reports whether the feed is eligible for refresh at the given instant.
func (f *Feed) Due(now time.Time) bool {
	return f.Schedulable() && !f.Health.NextFetchAt.After(now)
}
