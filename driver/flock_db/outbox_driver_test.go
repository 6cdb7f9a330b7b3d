package flock_db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlockDBRepository_SaveOutboxEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FlockDBRepository{pool: mock}

	payload := []byte(`{"feed_id":"x"}`)
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("FEED_REFRESHED", payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SaveOutboxEvent(context.Background(), "FEED_REFRESHED", payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlockDBRepository_FetchAndLockPendingOutboxEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FlockDBRepository{pool: mock}

	eventID := uuid.New()
	created := time.Now().Add(-time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, event_type, payload, status, created_at").
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "event_type", "payload", "status", "created_at"}).
			AddRow(eventID, "FEED_ERRORED", []byte(`{}`), "PENDING", created))
	mock.ExpectExec("UPDATE outbox_events SET status = 'PROCESSING'").
		WithArgs(eventID.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	events, err := repo.FetchAndLockPendingOutboxEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventID.String(), events[0].ID)
	assert.Equal(t, "FEED_ERRORED", events[0].EventType)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlockDBRepository_UpdateOutboxEventStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FlockDBRepository{pool: mock}

	errMsg := "delivery refused"
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("FAILED", pgxmock.AnyArg(), &errMsg, "event-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateOutboxEventStatus(context.Background(), "event-1", "FAILED", &errMsg))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlockDBRepository_PruneOutboxEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &FlockDBRepository{pool: mock}

	mock.ExpectExec("DELETE FROM outbox_events").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 7))

	pruned, err := repo.PruneOutboxEvents(context.Background(), 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pruned)

	require.NoError(t, mock.ExpectationsWereMet())
}
