//go:build unit || e2e

package builder

import (
	"time"

	"reservation-hub/internal/domain/booking"
	reqdto "reservation-hub/internal/handler/dto/request"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/queries"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	TimeUnit        string
	Quantity        int
	UserID          uuid.UUID
	Status          booking.Status
	IdempotencyKey  *uuid.UUID
	CreatedAt       time.Time
	StatusChangedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &BookingBuilder{
		ID:              uuid.New(),
		ResourceID:      uuid.New(),
		TimeUnit:        "2026-03-01",
		Quantity:        1,
		UserID:          uuid.New(),
		Status:          booking.StatusConfirmed,
		CreatedAt:       now,
		StatusChangedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.ResourceID, b.TimeUnit, b.Quantity, b.UserID, b.Status, b.IdempotencyKey, b.CreatedAt, b.StatusChangedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		TimeUnit:        b.TimeUnit,
		Quantity:        int32(b.Quantity),
		UserID:          b.UserID,
		Status:          b.Status.String(),
		IdempotencyKey:  pgconv.UUIDPtrToPgtype(b.IdempotencyKey),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		StatusChangedAt: pgconv.TimeToPgtype(b.StatusChangedAt),
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		TimeUnit:   b.TimeUnit,
		Quantity:   b.Quantity,
		UserID:     b.UserID,
		Status:     b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		TimeUnit:        b.TimeUnit,
		Quantity:        b.Quantity,
		UserID:          b.UserID,
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		StatusChangedAt: b.StatusChangedAt,
	}
}

func (b *BookingBuilder) BuildReserveRequestDTO() reqdto.ReserveRequest {
	quantity := b.Quantity
	return reqdto.ReserveRequest{
		ResourceID: b.ResourceID,
		TimeUnit:   b.TimeUnit,
		Quantity:   &quantity,
	}
}

// Fluent builder methods
func (b *BookingBuilder) ForResource(res *ResourceBuilder) *BookingBuilder {
	b.ResourceID = res.ID
	if len(res.TimeUnits) == 0 {
		b.TimeUnit = ""
	} else {
		b.TimeUnit = res.TimeUnits[0]
	}
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithQuantity(q int) *BookingBuilder {
	b.Quantity = q
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithIdempotencyKey(key uuid.UUID) *BookingBuilder {
	b.IdempotencyKey = &key
	return b
}
