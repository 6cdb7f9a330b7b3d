package domain

import (
	"errors"
	"fmt"
)

var (
	// フィード関連エラー
	ErrFeedNotFound      = errors.New("feed not found")
	ErrFeedAlreadyExists = errors.New("feed already exists")
	ErrFeedInactive      = errors.New("feed is inactive")

	// 記事関連エラー
	ErrArticleNotFound      = errors.New("article not found")
	ErrArticleAlreadyExists = errors.New("article already exists")

	// グループ関連エラー
	ErrGroupNotFound = errors.New("group not found")
)

// FetchError wraps network, HTTP and parse failures of a feed retrieval
// uniformly. The backoff policy does not distinguish the reasons; logging
// does.
type FetchError struct {
	Reason string
	Cause  error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("fetch failed: %s", e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ExternalHTTPError represents an unexpected HTTP status from an upstream
// feed source.
type ExternalHTTPError struct {
	StatusCode int
	URL        string
}

func (e *ExternalHTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}
