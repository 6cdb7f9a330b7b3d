package feed_fetch_port

import (
	"context"

	"flock/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=feed_fetch_port.go -destination=../../mocks/mock_feed_fetch_port.go -package=mocks

// FeedFetchPort performs exactly one bounded-time retrieval of a feed
// document. Swapping feed formats means swapping the implementation behind
// this interface.
type FeedFetchPort interface {
	Fetch(ctx context.Context, url string, itemLimit int) (*domain.FeedDocument, error)
}
