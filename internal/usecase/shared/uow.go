//go:generate go run go.uber.org/mock/mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

package shared

import (
	"context"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction with bounded lock wait; transient failures retry the whole closure
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Resources() ResourceRepository
	Bookings() BookingRepository
	Capacity() CapacityRepository
	Reviews() ReviewRepository
	RatingAggregates() RatingAggregateRepository
	Outbox() OutboxRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookingByIdempotencyKey(ctx context.Context, userID, key uuid.UUID) (*BookingSnapshot, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindByIdempotencyKey(ctx context.Context, tx sqlc.DBTX, userID, key uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) error
}

type CapacityRepository interface {
	// Consume atomically adds quantity to the counter unless that would exceed
	// capacityTotal. admitted=false means nothing changed.
	Consume(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, timeUnit string, capacityTotal, quantity int) (consumed int, admitted bool, err error)
	Release(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, timeUnit string, quantity int) (consumed int, err error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rv *review.Review) error
	SumByEntity(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, error)
}

type RatingAggregateRepository interface {
	Increment(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID, rating review.Rating) (review.Aggregate, error)
	// LockForRecompute creates the row if missing and locks it against concurrent increments.
	LockForRecompute(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, error)
	Overwrite(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID, agg review.Aggregate) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, event OutboxEvent) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, batchSize int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int) error
}

// AggregateCache fronts rating aggregate reads. Implementations must treat
// every error as a miss; the database stays the source of truth.
//
// Writers read Generation before reading the database and pass it to Set.
// Set is refused when the generation has advanced since, or when the cached
// count is already higher, so a slow reader never replaces a newer aggregate.
// Invalidate advances the generation and drops the entry.
type AggregateCache interface {
	Get(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, bool, error)
	Generation(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) (int64, error)
	Set(ctx context.Context, entityType resource.Kind, entityID uuid.UUID, agg review.Aggregate, generation int64) error
	Invalidate(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) error
}
