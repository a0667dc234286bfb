package readstore

import (
	"context"
	"time"

	"reservation-hub/internal/infra"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_mock.go -package=readstoremock
type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIdempotencyKeyParams) (sqlc.Bookings, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.Bookings, error)
	ListBookingsByResourceFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResourceFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByResourceKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResourceKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindByIdempotencyKey(ctx context.Context, userID, key uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByIdempotencyKey(ctx, r.db, sqlc.GetBookingByIdempotencyKeyParams{
		UserID:         userID,
		IdempotencyKey: pgconv.UUIDPtrToPgtype(&key),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for idempotency key", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by idempotency key", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, sqlc.ListBookingsByUserFirstPageParams{
		UserID:   userID,
		PageSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by user", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, sqlc.ListBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		PageSize:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by user", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindByResourceFirstPage(ctx context.Context, resourceID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByResourceFirstPage(ctx, r.db, sqlc.ListBookingsByResourceFirstPageParams{
		ResourceID: resourceID,
		PageSize:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by resource", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindByResourceKeyset(ctx context.Context, resourceID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByResourceKeyset(ctx, r.db, sqlc.ListBookingsByResourceKeysetParams{
		ResourceID: resourceID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		PageSize:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by resource", err)
	}
	return toBookingViews(rows), nil
}

func toBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		TimeUnit:        row.TimeUnit,
		Quantity:        int(row.Quantity),
		UserID:          row.UserID,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		StatusChangedAt: pgconv.TimeFromPgtype(row.StatusChangedAt),
	}
}

func toBookingViews(rows []sqlc.Bookings) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result
}
