package domain

import "time"

// FeedDocument is the parsed result of one feed retrieval: feed-level
// metadata plus the bounded, most-recent-first candidate items.
type FeedDocument struct {
	Title       string     `json:"title"`
	SiteLink    string     `json:"site_link"`
	Language    string     `json:"language"`
	LastBuildAt *time.Time `json:"last_build_at,omitempty"`

	Items []CandidateItem `json:"items"`
}

// CandidateItem is one entry of a fetched document before deduplication.
// Link is always set; GUID may be absent.
type CandidateItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	GUID        string     `json:"guid,omitempty"`
	Author      string     `json:"author,omitempty"`
	Body        string     `json:"body,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Categories  []string   `json:"categories,omitempty"`
	MediaURL    string     `json:"media_url,omitempty"`
}

// Fetch item bounds. The limit is a per-cycle work cap, not a parser
// limitation.
const (
	FirstFetchItemLimit = 20
	RefreshItemLimit    = 50
)
