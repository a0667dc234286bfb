//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservation-hub/internal/infra"
	"reservation-hub/internal/infra/readstore"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	readstoremock "reservation-hub/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestResourceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	testCases := []struct {
		name              string
		setupMock         func(*readstoremock.MockResourceReadQueries, uuid.UUID)
		expectedTimeUnits []string
		expectedError     bool
		expectKind        infra.RepositoryErrorKind
	}{
		{
			name: "success: resource with time units",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetResourceByID(ctx, gomock.Any(), id).Return(sqlc.Resources{
					ID:            id,
					Kind:          "event",
					Name:          "Jazz Night",
					OwnerID:       uuid.New(),
					CapacityTotal: 40,
					CreatedAt:     pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}, nil)
				mock.EXPECT().ListResourceTimeUnits(ctx, gomock.Any(), id).Return([]string{"2024-07-01T19:00", "2024-07-02T19:00"}, nil)
			},
			expectedTimeUnits: []string{"2024-07-01T19:00", "2024-07-02T19:00"},
		},
		{
			name: "success: always-available resource has empty time units",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetResourceByID(ctx, gomock.Any(), id).Return(sqlc.Resources{ID: id, Kind: "service", CapacityTotal: 1}, nil)
				mock.EXPECT().ListResourceTimeUnits(ctx, gomock.Any(), id).Return(nil, nil)
			},
			expectedTimeUnits: []string{},
		},
		{
			name: "error: resource not found",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetResourceByID(ctx, gomock.Any(), id).Return(sqlc.Resources{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: time unit lookup fails",
			setupMock: func(mock *readstoremock.MockResourceReadQueries, id uuid.UUID) {
				mock.EXPECT().GetResourceByID(ctx, gomock.Any(), id).Return(sqlc.Resources{ID: id}, nil)
				mock.EXPECT().ListResourceTimeUnits(ctx, gomock.Any(), id).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
			store := readstore.NewResourceReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, resourceID)

			result, actualError := store.FindByID(ctx, resourceID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			require.NotNil(t, result)
			assert.Equal(t, resourceID, result.ID)
			assert.Equal(t, tc.expectedTimeUnits, result.TimeUnits)
		})
	}
}

// =============================================================================
// ConsumedCapacity Tests
// =============================================================================

func TestResourceReadStore_ConsumedCapacity(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	testCases := []struct {
		name             string
		returnRow        sqlc.CapacityCounters
		returnErr        error
		expectedConsumed int
		expectedError    bool
	}{
		{name: "counter present", returnRow: sqlc.CapacityCounters{Consumed: 3, CapacityTotal: 5}, expectedConsumed: 3},
		{name: "missing counter reads as zero", returnErr: pgx.ErrNoRows, expectedConsumed: 0},
		{name: "database error", returnErr: errDBConnectionLost, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
			store := readstore.NewResourceReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetCapacityCounter(ctx, gomock.Any(), sqlc.GetCapacityCounterParams{
				ResourceID: resourceID,
				TimeUnit:   "2024-07-01",
			}).Return(tc.returnRow, tc.returnErr)

			consumed, err := store.ConsumedCapacity(ctx, resourceID, "2024-07-01")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedConsumed, consumed)
		})
	}
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
