//go:build unit

package queries_test

import (
	"context"
	"testing"

	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/queries"
	"reservation-hub/tests/common/builder"
	queriesmock "reservation-hub/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceQueries_Availability(t *testing.T) {
	ctx := context.Background()
	dated := builder.NewResourceBuilder().WithCapacity(2)
	anytime := builder.NewResourceBuilder().WithCapacity(5).AsAnytime()

	testCases := []struct {
		name        string
		res         *builder.ResourceBuilder
		timeUnit    string
		setupMock   func(store *queriesmock.MockResourceReadStore, res *builder.ResourceBuilder)
		expected    *queries.AvailabilityView
		expectedErr error
	}{
		{
			name:     "partially consumed unit",
			res:      dated,
			timeUnit: "2026-03-01",
			setupMock: func(store *queriesmock.MockResourceReadStore, res *builder.ResourceBuilder) {
				store.EXPECT().FindByID(gomock.Any(), res.ID).Return(res.BuildView(), nil)
				store.EXPECT().ConsumedCapacity(gomock.Any(), res.ID, "2026-03-01").Return(1, nil)
			},
			expected: &queries.AvailabilityView{ResourceID: dated.ID, TimeUnit: "2026-03-01", CapacityTotal: 2, Consumed: 1, Remaining: 1},
		},
		{
			name:     "anytime resource uses the empty unit",
			res:      anytime,
			timeUnit: "",
			setupMock: func(store *queriesmock.MockResourceReadStore, res *builder.ResourceBuilder) {
				store.EXPECT().FindByID(gomock.Any(), res.ID).Return(res.BuildView(), nil)
				store.EXPECT().ConsumedCapacity(gomock.Any(), res.ID, "").Return(0, nil)
			},
			expected: &queries.AvailabilityView{ResourceID: anytime.ID, CapacityTotal: 5, Remaining: 5},
		},
		{
			name:     "unit not offered",
			res:      dated,
			timeUnit: "2027-01-01",
			setupMock: func(store *queriesmock.MockResourceReadStore, res *builder.ResourceBuilder) {
				store.EXPECT().FindByID(gomock.Any(), res.ID).Return(res.BuildView(), nil)
			},
			expectedErr: queries.ErrInvalidTimeUnit,
		},
		{
			name:     "unknown resource",
			res:      dated,
			timeUnit: "2026-03-01",
			setupMock: func(store *queriesmock.MockResourceReadStore, res *builder.ResourceBuilder) {
				store.EXPECT().FindByID(gomock.Any(), res.ID).Return(nil, notFound())
			},
			expectedErr: queries.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockResourceReadStore(ctrl)
			tc.setupMock(store, tc.res)

			got, err := queries.NewResourceQueries(store).Availability(ctx, tc.res.ID, tc.timeUnit)
			if tc.expectedErr != nil {
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
