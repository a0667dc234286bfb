package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id              uuid.UUID
	resourceID      uuid.UUID
	timeUnit        string
	quantity        int
	userID          uuid.UUID
	status          Status
	idempotencyKey  *uuid.UUID
	createdAt       time.Time
	statusChangedAt time.Time
}

// NewPending starts a booking request. Admission moves it to CONFIRMED or
// REJECTED before it is written to the ledger.
func NewPending(resourceID uuid.UUID, timeUnit string, quantity int, userID uuid.UUID, idempotencyKey *uuid.UUID, now time.Time) (*Booking, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Booking{
		id:              uuid.New(),
		resourceID:      resourceID,
		timeUnit:        timeUnit,
		quantity:        quantity,
		userID:          userID,
		status:          StatusPending,
		idempotencyKey:  idempotencyKey,
		createdAt:       now,
		statusChangedAt: now,
	}, nil
}

func ReconstructBooking(
	id, resourceID uuid.UUID,
	timeUnit string,
	quantity int,
	userID uuid.UUID,
	status Status,
	idempotencyKey *uuid.UUID,
	createdAt, statusChangedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		resourceID:      resourceID,
		timeUnit:        timeUnit,
		quantity:        quantity,
		userID:          userID,
		status:          status,
		idempotencyKey:  idempotencyKey,
		createdAt:       createdAt,
		statusChangedAt: statusChangedAt,
	}
}

func (b *Booking) Confirm(now time.Time) error {
	return b.transition(StatusPending, StatusConfirmed, now)
}

func (b *Booking) Reject(now time.Time) error {
	return b.transition(StatusPending, StatusRejected, now)
}

// Cancel moves a confirmed booking to CANCELLED. Cancelling an already
// cancelled booking reports changed=false and no error.
func (b *Booking) Cancel(now time.Time) (changed bool, err error) {
	switch b.status {
	case StatusCancelled:
		return false, nil
	case StatusConfirmed:
		b.status = StatusCancelled
		b.statusChangedAt = now
		return true, nil
	default:
		return false, ErrNotCancellable
	}
}

func (b *Booking) transition(from, to Status, now time.Time) error {
	if b.status != from {
		return ErrInvalidTransition
	}
	b.status = to
	b.statusChangedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ResourceID() uuid.UUID      { return b.resourceID }
func (b *Booking) TimeUnit() string           { return b.timeUnit }
func (b *Booking) Quantity() int              { return b.quantity }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) IdempotencyKey() *uuid.UUID { return b.idempotencyKey }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) StatusChangedAt() time.Time { return b.statusChangedAt }
