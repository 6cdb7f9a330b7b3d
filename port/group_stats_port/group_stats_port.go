package group_stats_port

import (
	"context"

	"flock/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=group_stats_port.go -destination=../../mocks/mock_group_stats_port.go -package=mocks

type GroupStatsPort interface {
	// RecomputeGroupStats derives the group counters from current storage
	// state and persists them. Full recompute, never an increment.
	RecomputeGroupStats(ctx context.Context, groupID uuid.UUID) (*domain.GroupStats, error)
}
