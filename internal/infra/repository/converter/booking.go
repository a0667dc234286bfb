package converter

import (
	"reservation-hub/internal/domain/booking"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		ResourceID:      b.ResourceID(),
		TimeUnit:        b.TimeUnit(),
		Quantity:        int32(b.Quantity()), // #nosec G115 -- bounded by resource capacity
		UserID:          b.UserID(),
		Status:          b.Status().String(),
		IdempotencyKey:  pgconv.UUIDPtrToPgtype(b.IdempotencyKey()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		StatusChangedAt: pgconv.TimeToPgtype(b.StatusChangedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(
		row.ID,
		row.ResourceID,
		row.TimeUnit,
		int(row.Quantity),
		row.UserID,
		booking.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.IdempotencyKey),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.StatusChangedAt),
	)
}
