package repository

import (
	"context"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/infra/repository/converter"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
)

//go:generate go run go.uber.org/mock/mockgen -source=resource.go -destination=../../../tests/mock/repository/resource_mock.go -package=repositorymock
type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error
	CreateResourceTimeUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceTimeUnitParams) error
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

// Create must run inside a transaction so the time units land with the resource.
func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	if err := r.queries.CreateResource(ctx, tx, converter.ResourceToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create resource", err)
	}

	for _, params := range converter.ResourceTimeUnitParams(res) {
		if err := r.queries.CreateResourceTimeUnit(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create resource time unit", err)
		}
	}
	return nil
}
