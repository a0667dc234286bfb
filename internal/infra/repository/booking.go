package repository

import (
	"context"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/infra/repository/converter"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock
type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIdempotencyKeyParams) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// FindByIDForUpdate locks the booking row until the transaction ends.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) FindByIdempotencyKey(ctx context.Context, tx sqlc.DBTX, userID, key uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIdempotencyKey(ctx, tx, sqlc.GetBookingByIdempotencyKeyParams{
		UserID:         userID,
		IdempotencyKey: pgconv.UUIDPtrToPgtype(&key),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for idempotency key", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by idempotency key", err)
	}
	return converter.BookingFromRow(row), nil
}

// UpdateStatus persists b's current status, guarded on the row still being in from.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		Status:          b.Status().String(),
		StatusChangedAt: pgconv.TimeToPgtype(b.StatusChangedAt()),
		ID:              b.ID(),
		FromStatus:      from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found in expected status", nil, infra.KindNotFound)
	}
	return nil
}
