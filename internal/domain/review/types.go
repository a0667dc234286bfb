package review

import "reservation-hub/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.Class("rating must be an integer between 1 and 5", errs.ErrValidation)
	ErrCommentTooLong = errs.Class("comment exceeds maximum length", errs.ErrValidation)
	ErrMissingAuthor  = errs.Class("review author is required", errs.ErrUnauthenticated)
)
