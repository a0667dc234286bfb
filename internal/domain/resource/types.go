package resource

import "reservation-hub/internal/pkg/errs"

var (
	ErrInvalidKind         = errs.Class("entity type must be one of restaurant, event, activity, service", errs.ErrValidation)
	ErrEmptyResourceName   = errs.Class("resource name cannot be empty", errs.ErrValidation)
	ErrResourceNameTooLong = errs.Class("resource name is too long (max 200 characters)", errs.ErrValidation)
	ErrInvalidCapacity     = errs.Class("capacity total must be between 1 and 1000000", errs.ErrValidation)
	ErrInvalidTimeUnit     = errs.Class("time unit is not offered by this resource", errs.ErrValidation)
	ErrMalformedTimeUnit   = errs.Class("time unit must be YYYY-MM-DD or YYYY-MM-DDTHH:MM", errs.ErrValidation)
	ErrDuplicateTimeUnit   = errs.Class("time units must be distinct", errs.ErrValidation)
	ErrInvalidQuantity     = errs.Class("quantity must be positive and not exceed capacity", errs.ErrValidation)
	ErrTooManyTimeUnits    = errs.Class("too many time units", errs.ErrValidation)
	ErrMissingOwner        = errs.Class("resource owner is required", errs.ErrValidation)
)

type Kind string

const (
	KindRestaurant Kind = "restaurant"
	KindEvent      Kind = "event"
	KindActivity   Kind = "activity"
	KindService    Kind = "service"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRestaurant, KindEvent, KindActivity, KindService:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }
