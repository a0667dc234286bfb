package queries

import (
	"context"
	"log/slog"
	"time"

	"reservation-hub/internal/domain/resource"
	domreview "reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock
type ReviewReadStore interface {
	FindByEntityFirstPage(ctx context.Context, entityType string, entityID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByEntityKeyset(ctx context.Context, entityType string, entityID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	// GetAggregate returns the zero aggregate when no review was ever stored.
	GetAggregate(ctx context.Context, entityType string, entityID uuid.UUID) (domreview.Aggregate, error)
}

type ReviewQueries interface {
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	Aggregate(ctx context.Context, entityType string, entityID uuid.UUID) (*RatingAggregateView, error)
}

type reviewQueriesImpl struct {
	reviews   ReviewReadStore
	resources ResourceReadStore
	cache     shared.AggregateCache
}

func NewReviewQueries(reviews ReviewReadStore, resources ResourceReadStore, cache shared.AggregateCache) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, resources: resources, cache: cache}
}

// ListByEntity is newest first.
func (q *reviewQueriesImpl) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	kind, err := q.ensureEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*ReviewView
	if cursor.isFirstPage() {
		rows, err = q.reviews.FindByEntityFirstPage(ctx, kind.String(), entityID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.reviews.FindByEntityKeyset(ctx, kind.String(), entityID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(r *ReviewView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

func (q *reviewQueriesImpl) Aggregate(ctx context.Context, entityType string, entityID uuid.UUID) (*RatingAggregateView, error) {
	kind, err := q.ensureEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	agg, hit, err := q.cache.Get(ctx, kind, entityID)
	if err != nil {
		slog.WarnContext(ctx, "rating aggregate cache read failed", "error", err.Error())
		hit = false
	}

	if !hit {
		// The generation is read before the database so a fill that races a
		// newer write is refused by the cache.
		gen, genErr := q.cache.Generation(ctx, kind, entityID)
		if genErr != nil {
			slog.WarnContext(ctx, "rating aggregate cache generation read failed", "error", genErr.Error())
		}

		agg, err = q.reviews.GetAggregate(ctx, kind.String(), entityID)
		if err != nil {
			return nil, err
		}

		if genErr == nil {
			if err := q.cache.Set(ctx, kind, entityID, agg, gen); err != nil {
				slog.WarnContext(ctx, "rating aggregate cache write failed", "error", err.Error())
			}
		}
	}

	return &RatingAggregateView{
		EntityType: kind.String(),
		EntityID:   entityID,
		Count:      agg.Count,
		Sum:        agg.Sum,
		Mean:       agg.Mean(),
	}, nil
}

func (q *reviewQueriesImpl) ensureEntity(ctx context.Context, entityType string, entityID uuid.UUID) (resource.Kind, error) {
	kind, err := resource.ParseKind(entityType)
	if err != nil {
		return "", err
	}

	res, err := q.resources.FindByID(ctx, entityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrEntityNotFound
		}
		return "", err
	}
	if res.Kind != kind.String() {
		return "", ErrEntityNotFound
	}
	return kind, nil
}
