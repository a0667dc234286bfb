package commands

import (
	"context"
	"log/slog"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/domain/resource"
	domreview "reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/pkg/clock"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SubmitReviewRequest struct {
	EntityType string
	EntityID   uuid.UUID
	Rating     int
	Comment    string
}

type SubmitReviewResult struct {
	ReviewID  uuid.UUID
	Aggregate domreview.Aggregate
}

type RecomputeResult struct {
	Before  domreview.Aggregate
	After   domreview.Aggregate
	Drifted bool
}

//go:generate go run go.uber.org/mock/mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock
type ReviewCommands interface {
	Submit(ctx context.Context, req SubmitReviewRequest, actor identity.Identity) (*SubmitReviewResult, error)
	RecomputeAggregate(ctx context.Context, entityType string, entityID uuid.UUID, actor identity.Identity) (*RecomputeResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.AggregateCache
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, cache shared.AggregateCache, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *reviewUseCaseImpl) Submit(ctx context.Context, req SubmitReviewRequest, actor identity.Identity) (result *SubmitReviewResult, err error) {
	ctx, span := tracer.Start(ctx, "ReviewCommands.Submit", trace.WithAttributes(
		attribute.String("review.entity_type", req.EntityType),
		attribute.String("review.entity_id", req.EntityID.String()),
	))
	defer func() { endSpan(span, err) }()

	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	rv, err := domreview.NewReview(uuid.Nil, resource.Kind(req.EntityType), req.EntityID, actor.UserID, actor.DisplayName, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.ensureEntity(ctx, rv.EntityType(), rv.EntityID()); err != nil {
		return nil, err
	}

	gen, genErr := uc.cache.Generation(ctx, rv.EntityType(), rv.EntityID())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Reviews().Create(ctx, tx.DB(), rv); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return derr
		}

		agg, derr := tx.RatingAggregates().Increment(ctx, tx.DB(), rv.EntityType(), rv.EntityID(), rv.Rating())
		if derr != nil {
			return derr
		}

		event, derr := reviewSubmittedEvent(rv, agg)
		if derr != nil {
			return derr
		}
		if derr = tx.Outbox().Enqueue(ctx, tx.DB(), event); derr != nil {
			return derr
		}

		result = &SubmitReviewResult{ReviewID: rv.ID(), Aggregate: agg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		uc.invalidate(ctx, rv.EntityType(), rv.EntityID())
		return result, nil
	}
	uc.storeAggregate(ctx, rv.EntityType(), rv.EntityID(), result.Aggregate, gen)
	return result, nil
}

func (uc *reviewUseCaseImpl) RecomputeAggregate(ctx context.Context, entityType string, entityID uuid.UUID, actor identity.Identity) (result *RecomputeResult, err error) {
	ctx, span := tracer.Start(ctx, "ReviewCommands.RecomputeAggregate", trace.WithAttributes(
		attribute.String("review.entity_type", entityType),
		attribute.String("review.entity_id", entityID.String()),
	))
	defer func() { endSpan(span, err) }()

	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	kind, err := resource.ParseKind(entityType)
	if err != nil {
		return nil, err
	}

	snap, err := uc.uow.CommandReads().ResourceByID(ctx, entityID)
	if err != nil {
		return nil, notFoundAs(err, ErrEntityNotFound)
	}
	if snap.Kind != kind.String() {
		return nil, ErrEntityNotFound
	}
	if !actor.IsOwner || snap.OwnerID != actor.UserID {
		return nil, ErrForbidden
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		before, derr := tx.RatingAggregates().LockForRecompute(ctx, tx.DB(), kind, entityID)
		if derr != nil {
			return derr
		}

		after, derr := tx.Reviews().SumByEntity(ctx, tx.DB(), kind, entityID)
		if derr != nil {
			return derr
		}

		result = &RecomputeResult{Before: before, After: after, Drifted: before != after}
		if !result.Drifted {
			return nil
		}

		slog.WarnContext(ctx, "rating aggregate drift corrected",
			"entity_type", kind.String(),
			"entity_id", entityID.String(),
			"cached_count", before.Count,
			"cached_sum", before.Sum,
			"count", after.Count,
			"sum", after.Sum)

		return tx.RatingAggregates().Overwrite(ctx, tx.DB(), kind, entityID, after)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, kind, entityID)
	return result, nil
}

func (uc *reviewUseCaseImpl) ensureEntity(ctx context.Context, kind resource.Kind, entityID uuid.UUID) error {
	snap, err := uc.uow.CommandReads().ResourceByID(ctx, entityID)
	if err != nil {
		return notFoundAs(err, ErrEntityNotFound)
	}
	if snap.Kind != kind.String() {
		return ErrEntityNotFound
	}
	return nil
}

// storeAggregate publishes the committed aggregate. The cache keeps the
// higher count when a concurrent reader or submit got there first.
func (uc *reviewUseCaseImpl) storeAggregate(ctx context.Context, kind resource.Kind, entityID uuid.UUID, agg domreview.Aggregate, gen int64) {
	if err := uc.cache.Set(ctx, kind, entityID, agg, gen); err != nil {
		slog.WarnContext(ctx, "failed to store rating aggregate in cache",
			"entity_type", kind.String(),
			"entity_id", entityID.String(),
			"error", err.Error())
		uc.invalidate(ctx, kind, entityID)
	}
}

// A failed invalidation leaves the entry readable until its TTL expires.
func (uc *reviewUseCaseImpl) invalidate(ctx context.Context, kind resource.Kind, entityID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, kind, entityID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate rating aggregate cache",
			"entity_type", kind.String(),
			"entity_id", entityID.String(),
			"error", err.Error())
	}
}
