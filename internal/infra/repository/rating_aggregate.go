package repository

import (
	"context"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=rating_aggregate.go -destination=../../../tests/mock/repository/rating_aggregate_mock.go -package=repositorymock
type RatingAggregateQueries interface {
	IncrementRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementRatingAggregateParams) (sqlc.IncrementRatingAggregateRow, error)
	EnsureRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureRatingAggregateParams) error
	GetRatingAggregateForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingAggregateForUpdateParams) (sqlc.RatingAggregates, error)
	OverwriteRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.OverwriteRatingAggregateParams) error
}

type RatingAggregateRepository struct {
	queries RatingAggregateQueries
	db      sqlc.DBTX
}

func NewRatingAggregateRepository(queries RatingAggregateQueries, db sqlc.DBTX) *RatingAggregateRepository {
	return &RatingAggregateRepository{queries: queries, db: db}
}

// Increment is a single upsert, so concurrent submissions never lose an update.
func (r *RatingAggregateRepository) Increment(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID, rating review.Rating) (review.Aggregate, error) {
	row, err := r.queries.IncrementRatingAggregate(ctx, tx, sqlc.IncrementRatingAggregateParams{
		EntityType: entityType.String(),
		EntityID:   entityID,
		Rating:     int64(rating.Value()),
	})
	if err != nil {
		return review.Aggregate{}, infra.WrapRepoErr("failed to increment rating aggregate", err)
	}
	return review.Aggregate{Count: row.ReviewCount, Sum: row.RatingSum}, nil
}

func (r *RatingAggregateRepository) LockForRecompute(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, error) {
	err := r.queries.EnsureRatingAggregate(ctx, tx, sqlc.EnsureRatingAggregateParams{
		EntityType: entityType.String(),
		EntityID:   entityID,
	})
	if err != nil {
		return review.Aggregate{}, infra.WrapRepoErr("failed to ensure rating aggregate", err)
	}

	row, err := r.queries.GetRatingAggregateForUpdate(ctx, tx, sqlc.GetRatingAggregateForUpdateParams{
		EntityType: entityType.String(),
		EntityID:   entityID,
	})
	if err != nil {
		return review.Aggregate{}, infra.WrapRepoErr("failed to lock rating aggregate", err)
	}
	return review.Aggregate{Count: row.ReviewCount, Sum: row.RatingSum}, nil
}

func (r *RatingAggregateRepository) Overwrite(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID, agg review.Aggregate) error {
	err := r.queries.OverwriteRatingAggregate(ctx, tx, sqlc.OverwriteRatingAggregateParams{
		EntityType:  entityType.String(),
		EntityID:    entityID,
		ReviewCount: agg.Count,
		RatingSum:   agg.Sum,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to overwrite rating aggregate", err)
	}
	return nil
}
