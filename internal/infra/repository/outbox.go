package repository

import (
	"context"

	"reservation-hub/internal/infra"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxLastErrorLength = 500

//go:generate go run go.uber.org/mock/mockgen -source=outbox.go -destination=../../../tests/mock/repository/outbox_mock.go -package=repositorymock
type OutboxWriteQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, batchSize int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, event shared.OutboxEvent) error {
	params := sqlc.EnqueueOutboxEventParams{
		ID:        event.ID,
		Kind:      event.Kind,
		Topic:     event.Topic,
		Payload:   event.Payload,
		CreatedAt: pgconv.TimeToPgtype(event.CreatedAt),
	}

	if err := r.queries.EnqueueOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

// ClaimPending locks up to batchSize pending events, skipping rows another
// relay already holds.
func (r *OutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, batchSize int) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, int32(batchSize)) // #nosec G115 -- config bounded
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, shared.OutboxEvent{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			Attempts:  int(row.Attempts),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventPublished(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int) error {
	if len(reason) > maxLastErrorLength {
		reason = reason[:maxLastErrorLength]
	}

	params := sqlc.MarkOutboxEventFailedParams{
		LastError:   pgconv.StringToPgtype(reason),
		MaxAttempts: int32(maxAttempts), // #nosec G115 -- config bounded
		ID:          id,
	}
	if err := r.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
