package rate_limiter

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMaxHosts bounds the per-host limiter table. When the table is full
// the entry idle the longest is evicted.
const DefaultMaxHosts = 512

type hostEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// HostRateLimiter enforces one fetch per interval per upstream host. The
// table is bounded so a churn of one-off hosts cannot grow it without limit.
type HostRateLimiter struct {
	entries  map[string]*hostEntry
	mu       sync.Mutex
	interval time.Duration
	maxHosts int
}

func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	return &HostRateLimiter{
		entries:  make(map[string]*hostEntry),
		interval: interval,
		maxHosts: DefaultMaxHosts,
	}
}

func (h *HostRateLimiter) WaitForHost(ctx context.Context, urlStr string) error {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	host := parsedURL.Host
	if host == "" {
		return &url.Error{Op: "parse", URL: urlStr, Err: errors.New("missing host in URL")}
	}

	return h.getLimiterForHost(host).Wait(ctx)
}

// HostCount returns the number of tracked hosts.
func (h *HostRateLimiter) HostCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *HostRateLimiter) getLimiterForHost(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	if entry, exists := h.entries[host]; exists {
		entry.lastUsed = time.Now()
		return entry.limiter
	}

	if len(h.entries) >= h.maxHosts {
		h.evictIdlest()
	}

	entry := &hostEntry{
		limiter:  rate.NewLimiter(rate.Every(h.interval), 1),
		lastUsed: time.Now(),
	}
	h.entries[host] = entry
	return entry.limiter
}

// evictIdlest removes the entry with the oldest lastUsed. Caller holds mu.
func (h *HostRateLimiter) evictIdlest() {
	var oldestHost string
	var oldest time.Time
	for host, entry := range h.entries {
		if oldestHost == "" || entry.lastUsed.Before(oldest) {
			oldestHost = host
			oldest = entry.lastUsed
		}
	}
	if oldestHost != "" {
		delete(h.entries, oldestHost)
	}
}
