//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/queries"
	"reservation-hub/tests/common/builder"
	queriesmock "reservation-hub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func bookingViews(res *builder.ResourceBuilder, userID uuid.UUID, n int) []*queries.BookingView {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	out := make([]*queries.BookingView, 0, n)
	for i := range n {
		b := builder.NewBookingBuilder().ForResource(res).WithUserID(userID)
		b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		out = append(out, b.BuildView())
	}
	return out
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	res := builder.NewResourceBuilder().WithOwner(ownerID)
	userID := uuid.New()
	view := builder.NewBookingBuilder().ForResource(res).WithUserID(userID).BuildView()

	testCases := []struct {
		name        string
		actor       identity.Identity
		setupMock   func(bookings *queriesmock.MockBookingReadStore, resources *queriesmock.MockResourceReadStore)
		expectedErr error
	}{
		{
			name:  "the booking's user",
			actor: identity.Identity{UserID: userID},
			setupMock: func(bookings *queriesmock.MockBookingReadStore, _ *queriesmock.MockResourceReadStore) {
				bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			},
		},
		{
			name:  "the resource owner",
			actor: identity.Identity{UserID: ownerID, IsOwner: true},
			setupMock: func(bookings *queriesmock.MockBookingReadStore, resources *queriesmock.MockResourceReadStore) {
				bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
				resources.EXPECT().FindByID(gomock.Any(), res.ID).Return(res.BuildView(), nil)
			},
		},
		{
			name:  "someone else",
			actor: identity.Identity{UserID: uuid.New()},
			setupMock: func(bookings *queriesmock.MockBookingReadStore, _ *queriesmock.MockResourceReadStore) {
				bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			},
			expectedErr: queries.ErrForbidden,
		},
		{
			name:  "missing booking",
			actor: identity.Identity{UserID: userID},
			setupMock: func(bookings *queriesmock.MockBookingReadStore, _ *queriesmock.MockResourceReadStore) {
				bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, notFound())
			},
			expectedErr: queries.ErrBookingNotFound,
		},
		{
			name:        "anonymous",
			actor:       identity.Identity{},
			setupMock:   func(*queriesmock.MockBookingReadStore, *queriesmock.MockResourceReadStore) {},
			expectedErr: queries.ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			resources := queriesmock.NewMockResourceReadStore(ctrl)
			tc.setupMock(bookings, resources)

			got, err := queries.NewBookingQueries(bookings, resources).GetByID(ctx, view.ID, tc.actor)
			if tc.expectedErr != nil {
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListByUser_Paging(t *testing.T) {
	ctx := context.Background()
	res := builder.NewResourceBuilder()
	userID := uuid.New()
	actor := identity.Identity{UserID: userID}
	rows := bookingViews(res, userID, 3)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	resources := queriesmock.NewMockResourceReadStore(ctrl)
	q := queries.NewBookingQueries(bookings, resources)

	// limit+1 rows signal another page
	bookings.EXPECT().FindByUserFirstPage(gomock.Any(), userID, int32(3)).Return(rows, nil)
	first, next, err := q.ListByUser(ctx, userID, actor, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.NotNil(t, next)

	lastCreatedAt, lastID, err := queries.DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.True(t, rows[1].CreatedAt.Equal(lastCreatedAt))
	assert.Equal(t, rows[1].ID, lastID)

	bookings.EXPECT().FindByUserKeyset(gomock.Any(), userID, lastCreatedAt, lastID, int32(3)).Return(rows[2:], nil)
	second, next, err := q.ListByUser(ctx, userID, actor, next, 2)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Nil(t, next)
}

func TestBookingQueries_ListByUser_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := queries.NewBookingQueries(queriesmock.NewMockBookingReadStore(ctrl), queriesmock.NewMockResourceReadStore(ctrl))

	_, _, err := q.ListByUser(ctx, userID, identity.Identity{UserID: uuid.New()}, nil, 10)
	assert.True(t, errs.Is(err, queries.ErrForbidden))

	_, _, err = q.ListByUser(ctx, userID, identity.Identity{UserID: userID}, &queries.Cursor{After: "%%%"}, 10)
	assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
}

func TestBookingQueries_ListByResource(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	res := builder.NewResourceBuilder().WithOwner(ownerID)
	rows := bookingViews(res, uuid.New(), 2)

	testCases := []struct {
		name        string
		actor       identity.Identity
		setupMock   func(bookings *queriesmock.MockBookingReadStore, resources *queriesmock.MockResourceReadStore)
		expectedLen int
		expectedErr error
	}{
		{
			name:  "owner reads the ledger of their resource",
			actor: identity.Identity{UserID: ownerID, IsOwner: true},
			setupMock: func(bookings *queriesmock.MockBookingReadStore, resources *queriesmock.MockResourceReadStore) {
				resources.EXPECT().FindByID(gomock.Any(), res.ID).Return(res.BuildView(), nil)
				bookings.EXPECT().FindByResourceFirstPage(gomock.Any(), res.ID, int32(queries.DefaultListLimit+1)).Return(rows, nil)
			},
			expectedLen: 2,
		},
		{
			name:        "plain user is refused",
			actor:       identity.Identity{UserID: uuid.New()},
			setupMock:   func(*queriesmock.MockBookingReadStore, *queriesmock.MockResourceReadStore) {},
			expectedErr: queries.ErrForbidden,
		},
		{
			name:  "owner of another resource is refused",
			actor: identity.Identity{UserID: uuid.New(), IsOwner: true},
			setupMock: func(_ *queriesmock.MockBookingReadStore, resources *queriesmock.MockResourceReadStore) {
				resources.EXPECT().FindByID(gomock.Any(), res.ID).Return(res.BuildView(), nil)
			},
			expectedErr: queries.ErrForbidden,
		},
		{
			name:  "missing resource",
			actor: identity.Identity{UserID: ownerID, IsOwner: true},
			setupMock: func(_ *queriesmock.MockBookingReadStore, resources *queriesmock.MockResourceReadStore) {
				resources.EXPECT().FindByID(gomock.Any(), res.ID).Return(nil, notFound())
			},
			expectedErr: queries.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			resources := queriesmock.NewMockResourceReadStore(ctrl)
			tc.setupMock(bookings, resources)

			got, next, err := queries.NewBookingQueries(bookings, resources).ListByResource(ctx, res.ID, tc.actor, nil, 0)
			if tc.expectedErr != nil {
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tc.expectedLen)
			assert.Nil(t, next)
		})
	}
}
