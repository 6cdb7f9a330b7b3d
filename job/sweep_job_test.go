package job

import (
	"context"
	"errors"
	"testing"

	"flock/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTicker struct {
	result *domain.BatchResult
	err    error
	calls  int
}

func (f *fakeTicker) Tick(ctx context.Context, batchSize int) (*domain.BatchResult, error) {
	f.calls++
	return f.result, f.err
}

func TestSweepJob_RunsOneTick(t *testing.T) {
	ticker := &fakeTicker{result: &domain.BatchResult{
		Succeeded: []domain.FeedRefreshResult{{FeedID: uuid.New(), NewArticleCount: 3}},
	}}

	err := SweepJob(ticker)(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, ticker.calls)
}

func TestSweepJob_TickErrorPropagates(t *testing.T) {
	ticker := &fakeTicker{err: errors.New("connection refused")}

	err := SweepJob(ticker)(context.Background())
	assert.ErrorIs(t, err, ticker.err)
}

func TestSweepJob_QuietWhenNothingDue(t *testing.T) {
	ticker := &fakeTicker{result: &domain.BatchResult{}}

	err := SweepJob(ticker)(context.Background())
	assert.NoError(t, err)
}
