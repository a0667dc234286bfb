package readstore

import (
	"context"

	"reservation-hub/internal/infra"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=resource.go -destination=../../../tests/mock/readstore/resource_mock.go -package=readstoremock
type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	ListResourceTimeUnits(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]string, error)
	GetCapacityCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCapacityCounterParams) (sqlc.CapacityCounters, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get resource by id", err)
	}

	units, err := r.queries.ListResourceTimeUnits(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resource time units", err)
	}
	if units == nil {
		units = []string{}
	}

	return &queries.ResourceView{
		ID:            row.ID,
		Kind:          row.Kind,
		Name:          row.Name,
		OwnerID:       row.OwnerID,
		CapacityTotal: int(row.CapacityTotal),
		TimeUnits:     units,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ResourceReadStore) ConsumedCapacity(ctx context.Context, resourceID uuid.UUID, timeUnit string) (int, error) {
	row, err := r.queries.GetCapacityCounter(ctx, r.db, sqlc.GetCapacityCounterParams{
		ResourceID: resourceID,
		TimeUnit:   timeUnit,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			// no admission has touched this time unit yet
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to get capacity counter", err)
	}
	return int(row.Consumed), nil
}
