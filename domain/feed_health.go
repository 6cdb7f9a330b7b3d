package domain

import "time"

// The health state machine is expressed as pure transitions returning new
// FeedHealth records. Callers persist the result; nothing here touches
// storage or the clock.

// ClampUpdateFrequency forces the polling interval into the allowed range.
func ClampUpdateFrequency(minutes int) int {
	if minutes < MinUpdateFrequencyMinutes {
		return MinUpdateFrequencyMinutes
	}
	if minutes > MaxUpdateFrequencyMinutes {
		return MaxUpdateFrequencyMinutes
	}
	return minutes
}

// ApplySuccess transitions the health record after a successful fetch that
// persisted newCount articles.
func (h FeedHealth) ApplySuccess(now time.Time, newCount int) FeedHealth {
	next := h
	next.Status = FeedStatusActive
	next.LastFetchedAt = &now
	next.NextFetchAt = now.Add(time.Duration(ClampUpdateFrequency(h.UpdateFrequencyMinutes)) * time.Minute)
	next.LastErrorMessage = ""
	next.LastErrorAt = nil
	next.ConsecutiveFailures = 0
	next.FetchCount = h.FetchCount + 1
	next.TotalArticles = h.TotalArticles + int64(newCount)
	// Incremental mean over all fetches, including zero-article ones.
	next.AverageArticlesPerFetch = h.AverageArticlesPerFetch +
		(float64(newCount)-h.AverageArticlesPerFetch)/float64(next.FetchCount)
	return next
}

// ApplyFailure transitions the health record after a failed fetch. The retry
// delay doubles per consecutive failure, capped at MaxBackoffMinutes, and the
// feed is disabled outright once MaxConsecutiveFailures is reached.
func (h FeedHealth) ApplyFailure(now time.Time, reason string) FeedHealth {
	next := h
	next.Status = FeedStatusError
	next.ConsecutiveFailures = h.ConsecutiveFailures + 1
	next.ErrorCount = h.ErrorCount + 1
	next.LastErrorMessage = reason
	next.LastErrorAt = &now
	next.NextFetchAt = now.Add(BackoffDelay(h.UpdateFrequencyMinutes, next.ConsecutiveFailures))
	if next.ConsecutiveFailures >= MaxConsecutiveFailures {
		next.Status = FeedStatusInactive
	}
	return next
}

// Reset clears failure state and makes the feed immediately eligible again.
func (h FeedHealth) Reset(now time.Time) FeedHealth {
	next := h
	next.Status = FeedStatusActive
	next.LastErrorMessage = ""
	next.LastErrorAt = nil
	next.ConsecutiveFailures = 0
	next.NextFetchAt = now
	return next
}

// BackoffDelay computes min(frequency * 2^attempts, MaxBackoffMinutes) as a
// duration. attempts is the consecutive failure count after the failure being
// scored.
func BackoffDelay(updateFrequencyMinutes, attempts int) time.Duration {
	freq := ClampUpdateFrequency(updateFrequencyMinutes)
	delay := int64(freq)
	for i := 0; i < attempts; i++ {
		delay *= 2
		if delay >= MaxBackoffMinutes {
			delay = MaxBackoffMinutes
			break
		}
	}
	return time.Duration(delay) * time.Minute
}
