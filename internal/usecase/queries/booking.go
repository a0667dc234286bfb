package queries

import (
	"context"
	"time"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/infra"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByResourceFirstPage(ctx context.Context, resourceID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByResourceKeyset(ctx context.Context, resourceID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

// BookingQueries reads the ledger. Lists are oldest first and include
// rejected and cancelled bookings.
type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor identity.Identity) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, actor identity.Identity, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID, actor identity.Identity, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	resources ResourceReadStore
}

func NewBookingQueries(bookings BookingReadStore, resources ResourceReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, resources: resources}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor identity.Identity) (*BookingView, error) {
	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID == actor.UserID {
		return b, nil
	}
	if err := q.requireResourceOwner(ctx, b.ResourceID, actor); err != nil {
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, actor identity.Identity, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if actor.IsZero() {
		return nil, nil, ErrUnauthenticated
	}
	if userID != actor.UserID {
		return nil, nil, ErrForbidden
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor.isFirstPage() {
		rows, err = q.bookings.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.bookings.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, bookingKey)
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID, actor identity.Identity, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if actor.IsZero() {
		return nil, nil, ErrUnauthenticated
	}
	if err := q.requireResourceOwner(ctx, resourceID, actor); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor.isFirstPage() {
		rows, err = q.bookings.FindByResourceFirstPage(ctx, resourceID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.bookings.FindByResourceKeyset(ctx, resourceID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, bookingKey)
	return rows, next, nil
}

func (q *bookingQueriesImpl) requireResourceOwner(ctx context.Context, resourceID uuid.UUID, actor identity.Identity) error {
	if !actor.IsOwner {
		return ErrForbidden
	}
	res, err := q.resources.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResourceNotFound
		}
		return err
	}
	if res.OwnerID != actor.UserID {
		return ErrForbidden
	}
	return nil
}

func bookingKey(b *BookingView) (time.Time, uuid.UUID) {
	return b.CreatedAt, b.ID
}
