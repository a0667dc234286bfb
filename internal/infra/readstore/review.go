package readstore

import (
	"context"
	"time"

	domreview "reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=review.go -destination=../../../tests/mock/readstore/review_mock.go -package=readstoremock
type ReviewReadQueries interface {
	ListReviewsByEntityFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByEntityFirstPageParams) ([]sqlc.Reviews, error)
	ListReviewsByEntityKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByEntityKeysetParams) ([]sqlc.Reviews, error)
	GetRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingAggregateParams) (sqlc.RatingAggregates, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByEntityFirstPage(ctx context.Context, entityType string, entityID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewsByEntityFirstPageParams{
		EntityType: entityType,
		EntityID:   entityID,
		PageSize:   limit,
	}
	rows, err := r.queries.ListReviewsByEntityFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by entity", err)
	}
	return toReviewViews(rows), nil
}

func (r *ReviewReadStore) FindByEntityKeyset(ctx context.Context, entityType string, entityID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewsByEntityKeysetParams{
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		PageSize:   limit,
	}
	rows, err := r.queries.ListReviewsByEntityKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by entity", err)
	}
	return toReviewViews(rows), nil
}

func (r *ReviewReadStore) GetAggregate(ctx context.Context, entityType string, entityID uuid.UUID) (domreview.Aggregate, error) {
	row, err := r.queries.GetRatingAggregate(ctx, r.db, sqlc.GetRatingAggregateParams{
		EntityType: entityType,
		EntityID:   entityID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			// return zero aggregate if no review was submitted yet
			return domreview.Aggregate{}, nil
		}
		return domreview.Aggregate{}, infra.WrapRepoErr("failed to get rating aggregate", err)
	}
	return domreview.Aggregate{Count: row.ReviewCount, Sum: row.RatingSum}, nil
}

func toReviewViews(rows []sqlc.Reviews) []*queries.ReviewView {
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:          row.ID,
			EntityType:  row.EntityType,
			EntityID:    row.EntityID,
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			Rating:      int(row.Rating),
			Comment:     pgconv.StringPtrFromPgtype(row.Comment),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
