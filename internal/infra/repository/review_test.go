//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/infra/repository"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	repositorymock "reservation-hub/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()
	rv, err := review.NewReview(uuid.New(), resource.KindRestaurant, uuid.New(), uuid.New(), "Alice", 4, "  tasty  ", time.Now().UTC())
	require.NoError(t, err)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review inserted",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, tx *mockDBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) error {
						assert.Equal(t, "restaurant", arg.EntityType)
						assert.Equal(t, int16(4), arg.Rating)
						assert.Equal(t, "tasty", arg.Comment.String)
						return nil
					})
			},
		},
		{
			name: "error: user already reviewed entity",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, tx *mockDBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, tx *mockDBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, mockDB, rv)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// SumByEntity Tests
// =============================================================================

func TestReviewRepository_SumByEntity(t *testing.T) {
	ctx := context.Background()
	entityID := uuid.New()

	t.Run("success: sums stored reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries, mockDB)

		mockQueries.EXPECT().SumReviewsByEntity(ctx, mockDB, sqlc.SumReviewsByEntityParams{
			EntityType: "event",
			EntityID:   entityID,
		}).Return(sqlc.SumReviewsByEntityRow{ReviewCount: 2, RatingSum: 6}, nil)

		agg, err := repo.SumByEntity(ctx, mockDB, resource.KindEvent, entityID)
		require.NoError(t, err)
		assert.Equal(t, review.Aggregate{Count: 2, Sum: 6}, agg)
		assert.InDelta(t, 3.0, agg.Mean(), 0.0001)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReviewRepository(mockQueries, mockDB)

		mockQueries.EXPECT().SumReviewsByEntity(ctx, mockDB, gomock.Any()).Return(sqlc.SumReviewsByEntityRow{}, errDBConnection)

		_, err := repo.SumByEntity(ctx, mockDB, resource.KindEvent, entityID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
