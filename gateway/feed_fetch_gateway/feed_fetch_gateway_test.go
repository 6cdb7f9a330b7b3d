package feed_fetch_gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flock/config"
	"flock/domain"
	apperrors "flock/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetcherConfig() *config.FetcherConfig {
	return &config.FetcherConfig{
		Timeout:           2 * time.Second,
		FirstFetchLimit:   20,
		RefreshFetchLimit: 50,
		UserAgent:         "flock-test/1.0",
	}
}

func rssDocument(itemCount int) string {
	items := ""
	for i := 0; i < itemCount; i++ {
		items += fmt.Sprintf(`
		<item>
			<title>Item %[1]d</title>
			<link>https://example.com/articles/%[1]d</link>
			<guid>tag:example.com,2026:entry-%[1]d</guid>
			<description>&lt;p&gt;Body %[1]d&lt;/p&gt;&lt;img src="https://example.com/img-%[1]d.png"/&gt;&lt;script&gt;alert(1)&lt;/script&gt;</description>
			<pubDate>Mon, 02 Mar 2026 10:00:00 GMT</pubDate>
			<category>tech</category>
		</item>`, i)
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
	<rss version="2.0">
	<channel>
		<title>Example Feed</title>
		<link>https://example.com</link>
		<language>en</language>` + items + `
	</channel>
	</rss>`
}

func TestFeedFetchGateway_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "flock-test/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssDocument(3))
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	doc, err := gateway.Fetch(context.Background(), server.URL, domain.RefreshItemLimit)
	require.NoError(t, err)

	assert.Equal(t, "Example Feed", doc.Title)
	assert.Equal(t, "https://example.com", doc.SiteLink)
	assert.Equal(t, "en", doc.Language)
	require.Len(t, doc.Items, 3)

	first := doc.Items[0]
	assert.Equal(t, "Item 0", first.Title)
	assert.Equal(t, "https://example.com/articles/0", first.Link)
	assert.Equal(t, "tag:example.com,2026:entry-0", first.GUID)
	assert.Equal(t, []string{"tech"}, first.Categories)
	require.NotNil(t, first.PublishedAt)
	assert.NotContains(t, first.Body, "<script>", "script tags must be sanitized away")
	assert.Contains(t, first.Body, "Body 0")
	assert.Equal(t, "https://example.com/img-0.png", first.MediaURL)
}

func TestFeedFetchGateway_Fetch_ItemBound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssDocument(40))
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	doc, err := gateway.Fetch(context.Background(), server.URL, domain.FirstFetchItemLimit)
	require.NoError(t, err)
	assert.Len(t, doc.Items, domain.FirstFetchItemLimit)
	assert.Equal(t, "Item 0", doc.Items[0].Title, "source order is preserved")
}

func TestFeedFetchGateway_Fetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	_, err := gateway.Fetch(context.Background(), server.URL, domain.RefreshItemLimit)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "unexpected HTTP status", fetchErr.Reason)

	var httpErr *domain.ExternalHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusGone, httpErr.StatusCode)

	appErr, ok := apperrors.AsAppContextError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFetch, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatusCode())
	assert.True(t, appErr.IsRetryable())
}

func TestFeedFetchGateway_Fetch_MalformedDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not a feed")
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	_, err := gateway.Fetch(context.Background(), server.URL, domain.RefreshItemLimit)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "malformed feed document", fetchErr.Reason)
}

func TestFeedFetchGateway_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		fmt.Fprint(w, rssDocument(1))
	}))
	defer server.Close()

	cfg := testFetcherConfig()
	cfg.Timeout = 50 * time.Millisecond
	gateway := NewFeedFetchGateway(cfg, nil)

	start := time.Now()
	_, err := gateway.Fetch(context.Background(), server.URL, domain.RefreshItemLimit)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "a stalled fetch is abandoned, not waited out")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)

	appErr, ok := apperrors.AsAppContextError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTimeout, appErr.Code)
	assert.True(t, appErr.IsRetryable())
}

func TestFeedFetchGateway_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := gateway.Fetch(ctx, server.URL, domain.RefreshItemLimit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || err != nil)
}

func TestFeedFetchGateway_Fetch_SkipsLinklessItems(t *testing.T) {
	doc := `<?xml version="1.0"?>
	<rss version="2.0"><channel><title>T</title>
	<item><title>no link</title></item>
	<item><title>ok</title><link>https://example.com/a</link></item>
	</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, doc)
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	result, err := gateway.Fetch(context.Background(), server.URL, domain.RefreshItemLimit)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "https://example.com/a", result.Items[0].Link)
}

func TestFeedFetchGateway_Fetch_NormalizesItemLinks(t *testing.T) {
	doc := `<?xml version="1.0"?>
	<rss version="2.0"><channel><title>T</title>
	<item><title>tracked</title><link>https://example.com/article/?utm_source=rss&amp;utm_campaign=x</link></item>
	</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, doc)
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(testFetcherConfig(), nil)

	result, err := gateway.Fetch(context.Background(), server.URL, domain.RefreshItemLimit)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "https://example.com/article", result.Items[0].Link)
}
