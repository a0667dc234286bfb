//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/pkg/clock"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/commands"
	"reservation-hub/internal/usecase/shared"
	"reservation-hub/tests/common/builder"
	sharedmock "reservation-hub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

type uowMocks struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	resources  *sharedmock.MockResourceRepository
	bookings   *sharedmock.MockBookingRepository
	capacity   *sharedmock.MockCapacityRepository
	reviews    *sharedmock.MockReviewRepository
	aggregates *sharedmock.MockRatingAggregateRepository
	outbox     *sharedmock.MockOutboxRepository
	cache      *sharedmock.MockAggregateCache
}

// newUoWMocks wires a Tx whose repositories are all mocks. Within runs the
// closure once against that Tx.
func newUoWMocks(ctrl *gomock.Controller) *uowMocks {
	m := &uowMocks{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		resources:  sharedmock.NewMockResourceRepository(ctrl),
		bookings:   sharedmock.NewMockBookingRepository(ctrl),
		capacity:   sharedmock.NewMockCapacityRepository(ctrl),
		reviews:    sharedmock.NewMockReviewRepository(ctrl),
		aggregates: sharedmock.NewMockRatingAggregateRepository(ctrl),
		outbox:     sharedmock.NewMockOutboxRepository(ctrl),
		cache:      sharedmock.NewMockAggregateCache(ctrl),
	}
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Resources().Return(m.resources).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Capacity().Return(m.capacity).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().RatingAggregates().Return(m.aggregates).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	return m
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func TestBookingUseCase_Reserve(t *testing.T) {
	ctx := context.Background()
	user := identity.Identity{UserID: uuid.New(), DisplayName: "Ana"}
	res := builder.NewResourceBuilder().WithCapacity(2)
	key := uuid.New()

	testCases := []struct {
		name           string
		req            commands.ReserveRequest
		actor          identity.Identity
		setupMock      func(m *uowMocks)
		expectedStatus booking.Status
		expectedReplay bool
		expectedErr    error
	}{
		{
			name:  "success: admitted booking is confirmed and published",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 2},
			actor: user,
			setupMock: func(m *uowMocks) {
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
				m.capacity.EXPECT().Consume(gomock.Any(), gomock.Any(), res.ID, "2026-03-01", 2, 2).Return(2, true, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, b *booking.Booking) error {
						assert.Equal(t, booking.StatusConfirmed, b.Status())
						assert.Equal(t, user.UserID, b.UserID())
						return nil
					})
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, ev shared.OutboxEvent) error {
						assert.Equal(t, commands.EventBookingConfirmed, ev.Kind)
						assert.Equal(t, commands.TopicBookings, ev.Topic)
						return nil
					})
			},
			expectedStatus: booking.StatusConfirmed,
		},
		{
			name:  "rejected: no capacity left records a rejected booking",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 1},
			actor: user,
			setupMock: func(m *uowMocks) {
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
				m.capacity.EXPECT().Consume(gomock.Any(), gomock.Any(), res.ID, "2026-03-01", 2, 1).Return(2, false, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, b *booking.Booking) error {
						assert.Equal(t, booking.StatusRejected, b.Status())
						return nil
					})
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, ev shared.OutboxEvent) error {
						assert.Equal(t, commands.EventBookingRejected, ev.Kind)
						return nil
					})
			},
			expectedErr: commands.ErrCapacityExceeded,
		},
		{
			name:        "error: anonymous caller",
			req:         commands.ReserveRequest{ResourceID: res.ID, Quantity: 1},
			actor:       identity.Identity{},
			setupMock:   func(m *uowMocks) {},
			expectedErr: commands.ErrUnauthenticated,
		},
		{
			name:  "error: unknown resource",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 1},
			actor: user,
			setupMock: func(m *uowMocks) {
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(nil, notFound())
			},
			expectedErr: commands.ErrResourceNotFound,
		},
		{
			name:  "error: time unit not offered",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-04-01", Quantity: 1},
			actor: user,
			setupMock: func(m *uowMocks) {
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
			},
			expectedErr: resource.ErrInvalidTimeUnit,
		},
		{
			name:  "error: quantity above capacity total",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 3},
			actor: user,
			setupMock: func(m *uowMocks) {
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
			},
			expectedErr: resource.ErrInvalidQuantity,
		},
		{
			name:  "replay: same idempotency key returns the earlier booking",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 1, IdempotencyKey: &key},
			actor: user,
			setupMock: func(m *uowMocks) {
				prior := builder.NewBookingBuilder().ForResource(res).WithUserID(user.UserID).WithIdempotencyKey(key)
				m.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), user.UserID, key).Return(prior.BuildSnapshot(), nil)
			},
			expectedStatus: booking.StatusConfirmed,
			expectedReplay: true,
		},
		{
			name:  "error: idempotency key reused with a different body",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 2, IdempotencyKey: &key},
			actor: user,
			setupMock: func(m *uowMocks) {
				prior := builder.NewBookingBuilder().ForResource(res).WithUserID(user.UserID).WithIdempotencyKey(key).WithQuantity(1)
				m.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), user.UserID, key).Return(prior.BuildSnapshot(), nil)
			},
			expectedErr: commands.ErrIdempotencyKeyMismatch,
		},
		{
			name:  "error: transient failure is returned unchanged",
			req:   commands.ReserveRequest{ResourceID: res.ID, TimeUnit: "2026-03-01", Quantity: 1},
			actor: user,
			setupMock: func(m *uowMocks) {
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
				m.capacity.EXPECT().Consume(gomock.Any(), gomock.Any(), res.ID, "2026-03-01", 2, 1).
					Return(0, false, errs.Mark(errors.New("lock timeout"), errs.ErrTransient))
			},
			expectedErr: errs.ErrTransient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newUoWMocks(ctrl)
			tc.setupMock(m)

			uc := commands.NewBookingUseCase(m.uow, clock.NewMockClock(now))
			result, err := uc.Reserve(ctx, tc.req, tc.actor)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEqual(t, uuid.Nil, result.BookingID)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.Equal(t, tc.expectedReplay, result.Replayed)
		})
	}
}

func TestBookingUseCase_Reserve_ConcurrentKeyReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := identity.Identity{UserID: uuid.New()}
	res := builder.NewResourceBuilder()
	key := uuid.New()
	winner := builder.NewBookingBuilder().ForResource(res).WithUserID(user.UserID).WithIdempotencyKey(key)

	m := newUoWMocks(ctrl)
	gomock.InOrder(
		m.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), user.UserID, key).Return(nil, notFound()),
		m.reads.EXPECT().BookingByIdempotencyKey(gomock.Any(), user.UserID, key).Return(winner.BuildSnapshot(), nil),
	)
	m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
	m.capacity.EXPECT().Consume(gomock.Any(), gomock.Any(), res.ID, winner.TimeUnit, res.CapacityTotal, 1).Return(1, true, nil)
	m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

	uc := commands.NewBookingUseCase(m.uow, clock.NewMockClock(now))
	result, err := uc.Reserve(context.Background(), commands.ReserveRequest{
		ResourceID: res.ID, TimeUnit: winner.TimeUnit, Quantity: 1, IdempotencyKey: &key,
	}, user)

	require.NoError(t, err)
	assert.Equal(t, winner.ID, result.BookingID)
	assert.True(t, result.Replayed)
}

func TestBookingUseCase_Cancel(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	res := builder.NewResourceBuilder().WithOwner(ownerID)
	userID := uuid.New()

	confirmed := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().ForResource(res).WithUserID(userID).WithQuantity(2)
	}

	testCases := []struct {
		name          string
		actor         identity.Identity
		booking       *builder.BookingBuilder
		setupMock     func(m *uowMocks, b *builder.BookingBuilder)
		expectedAlready bool
		expectedErr   error
	}{
		{
			name:    "success: the booking's user cancels and capacity is released",
			actor:   identity.Identity{UserID: userID},
			booking: confirmed(),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
				m.capacity.EXPECT().Release(gomock.Any(), gomock.Any(), res.ID, b.TimeUnit, 2).Return(0, nil)
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), booking.StatusConfirmed).Return(nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, ev shared.OutboxEvent) error {
						assert.Equal(t, commands.EventBookingCancelled, ev.Kind)
						return nil
					})
			},
		},
		{
			name:    "success: the resource owner cancels",
			actor:   identity.Identity{UserID: ownerID, IsOwner: true},
			booking: confirmed(),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
				m.capacity.EXPECT().Release(gomock.Any(), gomock.Any(), res.ID, b.TimeUnit, 2).Return(0, nil)
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), booking.StatusConfirmed).Return(nil)
				m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "idempotent: cancelling twice changes nothing",
			actor:   identity.Identity{UserID: userID},
			booking: confirmed().WithStatus(booking.StatusCancelled),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
			},
			expectedAlready: true,
		},
		{
			name:    "error: rejected bookings cannot be cancelled",
			actor:   identity.Identity{UserID: userID},
			booking: confirmed().WithStatus(booking.StatusRejected),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
			},
			expectedErr: booking.ErrNotCancellable,
		},
		{
			name:    "error: another plain user",
			actor:   identity.Identity{UserID: uuid.New()},
			booking: confirmed(),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
			},
			expectedErr: commands.ErrForbidden,
		},
		{
			name:    "error: an owner of a different resource",
			actor:   identity.Identity{UserID: uuid.New(), IsOwner: true},
			booking: confirmed(),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
				m.reads.EXPECT().ResourceByID(gomock.Any(), res.ID).Return(res.BuildSnapshot(), nil)
			},
			expectedErr: commands.ErrForbidden,
		},
		{
			name:    "error: unknown booking",
			actor:   identity.Identity{UserID: userID},
			booking: confirmed(),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(nil, notFound())
			},
			expectedErr: commands.ErrBookingNotFound,
		},
		{
			name:    "error: released quantity missing from the counter",
			actor:   identity.Identity{UserID: userID},
			booking: confirmed(),
			setupMock: func(m *uowMocks, b *builder.BookingBuilder) {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
				m.capacity.EXPECT().Release(gomock.Any(), gomock.Any(), res.ID, b.TimeUnit, 2).Return(0, notFound())
			},
			expectedErr: commands.ErrLedgerInconsistent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newUoWMocks(ctrl)
			tc.setupMock(m, tc.booking)

			uc := commands.NewBookingUseCase(m.uow, clock.NewMockClock(now))
			result, err := uc.Cancel(ctx, tc.booking.ID, tc.actor)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.booking.ID, result.BookingID)
			assert.Equal(t, booking.StatusCancelled, result.Status)
			assert.Equal(t, tc.expectedAlready, result.AlreadyCancelled)
		})
	}
}
