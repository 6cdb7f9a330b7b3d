package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedHealth_ApplySuccess(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	h := FeedHealth{
		Status:                 FeedStatusPending,
		UpdateFrequencyMinutes: 30,
	}

	next := h.ApplySuccess(now, 4)

	assert.Equal(t, FeedStatusActive, next.Status)
	require.NotNil(t, next.LastFetchedAt)
	assert.Equal(t, now, *next.LastFetchedAt)
	assert.Equal(t, now.Add(30*time.Minute), next.NextFetchAt)
	assert.Equal(t, int64(1), next.FetchCount)
	assert.Equal(t, int64(4), next.TotalArticles)
	assert.Equal(t, 0, next.ConsecutiveFailures)
	assert.Empty(t, next.LastErrorMessage)
	assert.Nil(t, next.LastErrorAt)

	// Unchanged upstream on the second cycle adds nothing.
	second := next.ApplySuccess(now.Add(30*time.Minute), 0)
	assert.Equal(t, int64(2), second.FetchCount)
	assert.Equal(t, int64(4), second.TotalArticles)
}

func TestFeedHealth_ApplySuccess_IncrementalMean(t *testing.T) {
	now := time.Now().UTC()
	h := FeedHealth{UpdateFrequencyMinutes: 60}

	counts := []int{3, 0, 5}
	want := []float64{3, 1.5, 8.0 / 3.0}

	for i, c := range counts {
		h = h.ApplySuccess(now, c)
		assert.InDelta(t, want[i], h.AverageArticlesPerFetch, 1e-9, "after fetch %d", i+1)
	}
	assert.Equal(t, int64(3), h.FetchCount)
	assert.Equal(t, int64(8), h.TotalArticles)
}

func TestFeedHealth_ApplySuccess_ClearsFailureState(t *testing.T) {
	now := time.Now().UTC()
	at := now.Add(-time.Hour)
	h := FeedHealth{
		Status:                 FeedStatusError,
		UpdateFrequencyMinutes: 60,
		ConsecutiveFailures:    3,
		LastErrorMessage:       "connection refused",
		LastErrorAt:            &at,
		FetchCount:             7,
		ErrorCount:             3,
	}

	next := h.ApplySuccess(now, 1)

	assert.Equal(t, FeedStatusActive, next.Status)
	assert.Zero(t, next.ConsecutiveFailures)
	assert.Empty(t, next.LastErrorMessage)
	assert.Nil(t, next.LastErrorAt)
	assert.Equal(t, int64(3), next.ErrorCount, "error count is cumulative, not reset")
}

func TestFeedHealth_ApplyFailure_BackoffMonotonicity(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	h := FeedHealth{
		Status:                 FeedStatusActive,
		UpdateFrequencyMinutes: 60,
	}

	wantDelays := []time.Duration{
		120 * time.Minute,
		240 * time.Minute,
		480 * time.Minute,
		960 * time.Minute,
		1440 * time.Minute, // capped at 24h
	}

	for i, want := range wantDelays {
		h = h.ApplyFailure(now, "timeout")
		assert.Equal(t, i+1, h.ConsecutiveFailures)
		assert.Equal(t, now.Add(want), h.NextFetchAt, "failure %d", i+1)
		if i+1 < MaxConsecutiveFailures {
			assert.Equal(t, FeedStatusError, h.Status, "failure %d", i+1)
		}
	}

	assert.Equal(t, FeedStatusInactive, h.Status, "fifth failure disables the feed")
	assert.Equal(t, int64(5), h.ErrorCount)
}

func TestFeedHealth_ApplyFailure_ThirdAttemptScenario(t *testing.T) {
	now := time.Now().UTC()
	h := FeedHealth{
		Status:                 FeedStatusError,
		UpdateFrequencyMinutes: 60,
		ConsecutiveFailures:    2,
	}

	next := h.ApplyFailure(now, "timeout")

	assert.Equal(t, 3, next.ConsecutiveFailures)
	assert.Equal(t, now.Add(480*time.Minute), next.NextFetchAt) // min(60*8, 1440)
	assert.Equal(t, FeedStatusError, next.Status, "not yet inactive")
	assert.Equal(t, "timeout", next.LastErrorMessage)
	require.NotNil(t, next.LastErrorAt)
}

func TestFeedHealth_Reset(t *testing.T) {
	now := time.Now().UTC()
	at := now.Add(-2 * time.Hour)
	h := FeedHealth{
		Status:                 FeedStatusInactive,
		UpdateFrequencyMinutes: 60,
		ConsecutiveFailures:    5,
		LastErrorMessage:       "gone",
		LastErrorAt:            &at,
		NextFetchAt:            now.Add(24 * time.Hour),
	}

	next := h.Reset(now)

	assert.Equal(t, FeedStatusActive, next.Status)
	assert.Zero(t, next.ConsecutiveFailures)
	assert.Empty(t, next.LastErrorMessage)
	assert.Nil(t, next.LastErrorAt)
	assert.Equal(t, now, next.NextFetchAt, "immediately eligible again")
}

func TestBackoffDelay_Cap(t *testing.T) {
	assert.Equal(t, 1440*time.Minute, BackoffDelay(1440, 1))
	assert.Equal(t, 1440*time.Minute, BackoffDelay(720, 10))
	assert.Equal(t, 10*time.Minute, BackoffDelay(5, 1))
}

func TestClampUpdateFrequency(t *testing.T) {
	assert.Equal(t, MinUpdateFrequencyMinutes, ClampUpdateFrequency(0))
	assert.Equal(t, 60, ClampUpdateFrequency(60))
	assert.Equal(t, MaxUpdateFrequencyMinutes, ClampUpdateFrequency(10000))
}

func TestFeed_Due(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name string
		feed Feed
		want bool
	}{
		{
			name: "overdue active feed is due",
			feed: Feed{IsActive: true, Health: FeedHealth{Status: FeedStatusActive, NextFetchAt: now.Add(-time.Minute)}},
			want: true,
		},
		{
			name: "inactive status is never due even when overdue",
			feed: Feed{IsActive: true, Health: FeedHealth{Status: FeedStatusInactive, NextFetchAt: now.Add(-time.Hour)}},
			want: false,
		},
		{
			name: "disabled flag is never due",
			feed: Feed{IsActive: false, Health: FeedHealth{Status: FeedStatusActive, NextFetchAt: now.Add(-time.Hour)}},
			want: false,
		},
		{
			name: "not yet due",
			feed: Feed{IsActive: true, Health: FeedHealth{Status: FeedStatusActive, NextFetchAt: now.Add(time.Hour)}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.feed.Due(now))
		})
	}
}
