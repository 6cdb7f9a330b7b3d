package feed_fetch_gateway

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"flock/config"
	"flock/domain"
	apperrors "flock/utils/errors"
	"flock/utils/logger"
	"flock/utils/rate_limiter"
	"flock/utils/url_normalizer"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	rssFeed "github.com/mmcdole/gofeed"
)

// FeedFetchGateway performs one bounded-time retrieval and parse of a feed
// document. Retry policy lives in the health state machine, not here.
type FeedFetchGateway struct {
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
	sanitizer   *bluemonday.Policy
	userAgent   string
}

func NewFeedFetchGateway(cfg *config.FetcherConfig, rateLimiter *rate_limiter.HostRateLimiter) *FeedFetchGateway {
	return &FeedFetchGateway{
		httpClient:  createHTTPClient(cfg.Timeout),
		rateLimiter: rateLimiter,
		sanitizer:   bluemonday.UGCPolicy(),
		userAgent:   cfg.UserAgent,
	}
}

func (g *FeedFetchGateway) Fetch(ctx context.Context, feedURL string, itemLimit int) (*domain.FeedDocument, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, fetchFailure("rate limit wait aborted", err, feedURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fetchFailure("invalid feed URL", err, feedURL)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching feed", "url", feedURL, "error", err)
		return nil, fetchFailure("network error", err, feedURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fetchFailure("unexpected HTTP status",
			&domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: feedURL}, feedURL)
	}

	parsed, err := rssFeed.NewParser().Parse(resp.Body)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error parsing feed document", "url", feedURL, "error", err)
		return nil, fetchFailure("malformed feed document", err, feedURL)
	}

	doc := g.convertFeed(parsed, itemLimit)
	logger.SafeInfoContext(ctx, "Feed fetched", "url", feedURL, "title", doc.Title, "items", len(doc.Items))

	return doc, nil
}

// fetchFailure classifies a retrieval failure. Timeouts get their own code
// so callers can tell a slow upstream from a broken one; the FetchError in
// the chain keeps the uniform backoff contract.
func fetchFailure(reason string, cause error, feedURL string) error {
	code := apperrors.CodeFetch
	var netErr net.Error
	if errors.Is(cause, context.DeadlineExceeded) || (errors.As(cause, &netErr) && netErr.Timeout()) {
		code = apperrors.CodeTimeout
	}

	return apperrors.New(code, reason, "gateway", "FeedFetchGateway", "Fetch",
		&domain.FetchError{Reason: reason, Cause: cause},
		map[string]interface{}{"url": feedURL})
}

// convertFeed maps the parsed feed to the domain document, materializing at
// most itemLimit items in source order (most recent first as provided).
func (g *FeedFetchGateway) convertFeed(parsed *rssFeed.Feed, itemLimit int) *domain.FeedDocument {
	doc := &domain.FeedDocument{
		Title:       parsed.Title,
		SiteLink:    parsed.Link,
		Language:    parsed.Language,
		LastBuildAt: parsed.UpdatedParsed,
	}

	for _, item := range parsed.Items {
		if len(doc.Items) >= itemLimit {
			break
		}
		if item == nil || strings.TrimSpace(item.Link) == "" {
			// An item without a link cannot be deduplicated or read.
			continue
		}

		// Canonicalize the link so the same article under varying tracking
		// parameters dedupes to one row.
		link := strings.TrimSpace(item.Link)
		if normalized, err := url_normalizer.NormalizeURL(link); err == nil {
			link = normalized
		}

		candidate := domain.CandidateItem{
			Title:      strings.TrimSpace(item.Title),
			Link:       link,
			GUID:       strings.TrimSpace(item.GUID),
			Body:       g.sanitizer.Sanitize(item.Content),
			Summary:    g.sanitizer.Sanitize(item.Description),
			Categories: item.Categories,
			MediaURL:   extractMediaURL(item),
		}
		if item.Author != nil {
			candidate.Author = item.Author.Name
		}
		if item.PublishedParsed != nil {
			candidate.PublishedAt = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			candidate.PublishedAt = item.UpdatedParsed
		}
		if candidate.Body == "" {
			candidate.Body = candidate.Summary
		}

		doc.Items = append(doc.Items, candidate)
	}

	return doc
}

// extractMediaURL picks the item's primary media URL: an enclosure or item
// image when present, otherwise the first img of the description HTML.
func extractMediaURL(item *rssFeed.Item) string {
	for _, enclosure := range item.Enclosures {
		if enclosure != nil && enclosure.URL != "" {
			return enclosure.URL
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	html := item.Content
	if html == "" {
		html = item.Description
	}
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return src
}

func createHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeout,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
