package commands

import (
	"reservation-hub/internal/infra"
	"reservation-hub/internal/pkg/errs"
)

var (
	ErrUnauthenticated = errs.Class("authentication required", errs.ErrUnauthenticated)
	ErrForbidden       = errs.Class("not allowed to act on this resource", errs.ErrForbidden)

	ErrResourceNotFound = errs.Class("resource not found", errs.ErrNotFound)
	ErrEntityNotFound   = errs.Class("reviewed entity not found", errs.ErrNotFound)
	ErrBookingNotFound  = errs.Class("booking not found", errs.ErrNotFound)

	ErrCapacityExceeded       = errs.Class("requested quantity is no longer available", errs.ErrConflict)
	ErrIdempotencyKeyMismatch = errs.Class("idempotency key was used for a different request", errs.ErrConflict)
	ErrDuplicateReview        = errs.Class("user has already reviewed this entity", errs.ErrConflict)

	ErrLedgerInconsistent = errs.New("capacity counter does not cover the booking being released")
)

// notFoundAs replaces a repository not-found error with a use case sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
