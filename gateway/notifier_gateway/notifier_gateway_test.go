package notifier_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flock/config"
	"flock/domain"
	"flock/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

func TestWebhookNotifierGateway_Deliver(t *testing.T) {
	var gotEventType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEventType = r.Header.Get("X-Event-Type")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = buf
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	gateway := NewWebhookNotifierGateway(&config.OutboxConfig{
		WebhookURL:     server.URL,
		WebhookTimeout: time.Second,
	})

	err := gateway.Deliver(context.Background(), "FEED_REFRESHED", []byte(`{"feed_id":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "FEED_REFRESHED", gotEventType)
	assert.JSONEq(t, `{"feed_id":"x"}`, string(gotBody))
}

func TestWebhookNotifierGateway_Deliver_Non2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gateway := NewWebhookNotifierGateway(&config.OutboxConfig{
		WebhookURL:     server.URL,
		WebhookTimeout: time.Second,
	})

	err := gateway.Deliver(context.Background(), "FEED_ERRORED", []byte(`{}`))
	var httpErr *domain.ExternalHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestWebhookNotifierGateway_Deliver_LogSinkWithoutEndpoint(t *testing.T) {
	gateway := NewWebhookNotifierGateway(&config.OutboxConfig{})
	err := gateway.Deliver(context.Background(), "FEED_DISABLED", []byte(`{}`))
	assert.NoError(t, err)
}
