package repository

import (
	"context"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/infra/repository/converter"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=review.go -destination=../../../tests/mock/repository/review_mock.go -package=repositorymock
type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
	SumReviewsByEntity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumReviewsByEntityParams) (sqlc.SumReviewsByEntityRow, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports KindDuplicateKey when the user already reviewed the entity.
func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rv *review.Review) error {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rv)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

// SumByEntity derives the aggregate from the stored reviews alone.
func (r *ReviewRepository) SumByEntity(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, error) {
	row, err := r.queries.SumReviewsByEntity(ctx, tx, sqlc.SumReviewsByEntityParams{
		EntityType: entityType.String(),
		EntityID:   entityID,
	})
	if err != nil {
		return review.Aggregate{}, infra.WrapRepoErr("failed to sum reviews", err)
	}
	return review.Aggregate{Count: row.ReviewCount, Sum: row.RatingSum}, nil
}
