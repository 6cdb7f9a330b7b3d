package notifier_gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"flock/config"
	"flock/domain"
	"flock/utils/logger"
)

// WebhookNotifierGateway POSTs drained outbox events to a configured
// endpoint. With no endpoint configured it degrades to log-only delivery,
// which keeps the outbox draining in development setups.
type WebhookNotifierGateway struct {
	endpoint   string
	httpClient *http.Client
}

func NewWebhookNotifierGateway(cfg *config.OutboxConfig) *WebhookNotifierGateway {
	timeout := cfg.WebhookTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookNotifierGateway{
		endpoint: cfg.WebhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Deliver sends one event. A non-2xx response counts as a delivery failure
// so the event lands in FAILED instead of silently disappearing.
func (g *WebhookNotifierGateway) Deliver(ctx context.Context, eventType string, payload []byte) error {
	if g.endpoint == "" {
		logger.SafeInfoContext(ctx, "event delivered to log sink", "event_type", eventType, "payload_bytes", len(payload))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", eventType)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &domain.FetchError{Reason: "webhook delivery failed", Cause: err}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: g.endpoint}
	}
	return nil
}
