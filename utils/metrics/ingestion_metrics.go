package metrics

import (
	"sync"
	"time"
)

// IngestionSnapshot is a point-in-time view of the ingestion counters.
type IngestionSnapshot struct {
	CyclesRun        int64         `json:"cycles_run"`
	CyclesSucceeded  int64         `json:"cycles_succeeded"`
	CyclesFailed     int64         `json:"cycles_failed"`
	SuccessRate      float64       `json:"success_rate"`
	ArticlesIngested int64         `json:"articles_ingested"`
	AverageCycleTime time.Duration `json:"average_cycle_time"`
}

// IngestionMetrics provides thread-safe counters for ingestion cycles.
type IngestionMetrics struct {
	cyclesRun        int64
	cyclesSucceeded  int64
	cyclesFailed     int64
	articlesIngested int64
	totalCycleTime   time.Duration
	cycleTimeCount   int64
	mutex            sync.RWMutex
}

func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{}
}

// RecordSuccess records a completed cycle and the number of articles it
// persisted.
func (m *IngestionMetrics) RecordSuccess(newArticles int, duration time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cyclesRun++
	m.cyclesSucceeded++
	m.articlesIngested += int64(newArticles)
	m.totalCycleTime += duration
	m.cycleTimeCount++
}

// RecordFailure records a failed cycle.
func (m *IngestionMetrics) RecordFailure(duration time.Duration) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cyclesRun++
	m.cyclesFailed++
	m.totalCycleTime += duration
	m.cycleTimeCount++
}

// Snapshot returns a consistent view of all counters.
func (m *IngestionMetrics) Snapshot() IngestionSnapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snapshot := IngestionSnapshot{
		CyclesRun:        m.cyclesRun,
		CyclesSucceeded:  m.cyclesSucceeded,
		CyclesFailed:     m.cyclesFailed,
		ArticlesIngested: m.articlesIngested,
	}
	if m.cyclesRun > 0 {
		snapshot.SuccessRate = float64(m.cyclesSucceeded) / float64(m.cyclesRun)
	}
	if m.cycleTimeCount > 0 {
		snapshot.AverageCycleTime = m.totalCycleTime / time.Duration(m.cycleTimeCount)
	}
	return snapshot
}

// Reset clears all counters.
func (m *IngestionMetrics) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cyclesRun = 0
	m.cyclesSucceeded = 0
	m.cyclesFailed = 0
	m.articlesIngested = 0
	m.totalCycleTime = 0
	m.cycleTimeCount = 0
}
