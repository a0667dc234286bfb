package booking

import "reservation-hub/internal/pkg/errs"

var (
	ErrInvalidQuantity   = errs.Class("quantity must be a positive integer", errs.ErrValidation)
	ErrNotCancellable    = errs.Class("only confirmed bookings can be cancelled", errs.ErrConflict)
	ErrInvalidTransition = errs.New("invalid booking status transition")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsCapacity reports whether a booking in this status counts against
// the consumed capacity of its time unit.
func (s Status) HoldsCapacity() bool {
	return s == StatusConfirmed
}
