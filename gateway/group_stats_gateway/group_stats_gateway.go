package group_stats_gateway

import (
	"context"
	"errors"

	"flock/domain"
	"flock/driver/flock_db"

	"github.com/google/uuid"
)

// GroupStatsGateway adapts the group drivers to the group stats port.
type GroupStatsGateway struct {
	flock_db *flock_db.FlockDBRepository
}

func NewGroupStatsGateway(pool flock_db.DBPool) *GroupStatsGateway {
	return &GroupStatsGateway{flock_db: flock_db.NewFlockDBRepository(pool)}
}

func (g *GroupStatsGateway) RecomputeGroupStats(ctx context.Context, groupID uuid.UUID) (*domain.GroupStats, error) {
	if g.flock_db == nil {
		return nil, errors.New("database connection not available")
	}
	return g.flock_db.RecomputeGroupStats(ctx, groupID)
}
