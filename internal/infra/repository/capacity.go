package repository

import (
	"context"

	"reservation-hub/internal/infra"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=capacity.go -destination=../../../tests/mock/repository/capacity_mock.go -package=repositorymock
type CapacityWriteQueries interface {
	ConsumeCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeCapacityParams) (int32, error)
	ReleaseCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseCapacityParams) (int32, error)
}

// CapacityRepository maintains the consumed-capacity counter per
// (resource, time unit). The conditional upsert is the serialization point
// for admissions: the row lock it takes orders concurrent reservations.
type CapacityRepository struct {
	queries CapacityWriteQueries
	db      sqlc.DBTX
}

func NewCapacityRepository(queries CapacityWriteQueries, db sqlc.DBTX) *CapacityRepository {
	return &CapacityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CapacityRepository) Consume(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, timeUnit string, capacityTotal, quantity int) (int, bool, error) {
	consumed, err := r.queries.ConsumeCapacity(ctx, tx, sqlc.ConsumeCapacityParams{
		ResourceID:    resourceID,
		TimeUnit:      timeUnit,
		CapacityTotal: int32(capacityTotal), // #nosec G115 -- capped by MaxCapacityTotal
		Consumed:      int32(quantity),      // #nosec G115 -- bounded by capacity
	})
	if err != nil {
		// The conditional update matched no row: admitting would oversell.
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to consume capacity", err)
	}
	return int(consumed), true, nil
}

func (r *CapacityRepository) Release(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, timeUnit string, quantity int) (int, error) {
	consumed, err := r.queries.ReleaseCapacity(ctx, tx, sqlc.ReleaseCapacityParams{
		Quantity:   int32(quantity), // #nosec G115 -- bounded by capacity
		ResourceID: resourceID,
		TimeUnit:   timeUnit,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("capacity counter missing or below released quantity", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to release capacity", err)
	}
	return int(consumed), nil
}
