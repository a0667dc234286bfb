package queries

import "reservation-hub/internal/pkg/errs"

var (
	ErrResourceNotFound = errs.Class("resource not found", errs.ErrNotFound)
	ErrBookingNotFound  = errs.Class("booking not found", errs.ErrNotFound)
	ErrEntityNotFound   = errs.Class("reviewed entity not found", errs.ErrNotFound)
	ErrForbidden        = errs.Class("not allowed to read this data", errs.ErrForbidden)
	ErrUnauthenticated  = errs.Class("authentication required", errs.ErrUnauthenticated)
	ErrInvalidCursor    = errs.Class("invalid cursor", errs.ErrValidation)
	ErrInvalidTimeUnit  = errs.Class("time unit is not offered by this resource", errs.ErrValidation)
)
