package flock_db

import (
	"context"

	apperrors "flock/utils/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the drivers use. pgxmock satisfies it
// in tests.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

type FlockDBRepository struct {
	pool DBPool
}

func NewFlockDBRepository(pool DBPool) *FlockDBRepository {
	return &FlockDBRepository{pool: pool}
}

// databaseError wraps a driver failure with the operation it came from.
// Sentinel errors (ErrFeedNotFound and friends) bypass this and are returned
// bare so callers can match them with errors.Is.
func databaseError(operation, message string, cause error, fields map[string]interface{}) error {
	return apperrors.New(apperrors.CodeDatabase, message, "driver", "FlockDBRepository", operation, cause, fields)
}
