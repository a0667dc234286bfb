//go:build unit

package booking_test

import (
	"testing"
	"time"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

func newPending(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewPending(uuid.New(), "2024-07-01", 2, uuid.New(), nil, t0)
	require.NoError(t, err)
	return b
}

func TestNewPending(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		key := uuid.New()
		b, err := booking.NewPending(uuid.New(), "", 1, uuid.New(), &key, t0)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, t0, b.CreatedAt())
		assert.Equal(t, t0, b.StatusChangedAt())
		assert.Equal(t, &key, b.IdempotencyKey())
	})

	for _, q := range []int{0, -1} {
		b, err := booking.NewPending(uuid.New(), "", q, uuid.New(), nil, t0)
		assert.ErrorIs(t, err, booking.ErrInvalidQuantity)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Nil(t, b)
	}
}

func TestBooking_Transitions(t *testing.T) {
	later := t0.Add(time.Minute)

	t.Run("pending to confirmed", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm(later))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, later, b.StatusChangedAt())
		assert.Equal(t, t0, b.CreatedAt())
	})

	t.Run("pending to rejected", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Reject(later))
		assert.Equal(t, booking.StatusRejected, b.Status())
		assert.Equal(t, later, b.StatusChangedAt())
	})

	t.Run("confirmed cannot be confirmed or rejected again", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.Confirm(later))
		assert.ErrorIs(t, b.Confirm(later), booking.ErrInvalidTransition)
		assert.ErrorIs(t, b.Reject(later), booking.ErrInvalidTransition)
	})
}

func TestBooking_Cancel(t *testing.T) {
	later := t0.Add(time.Hour)

	testCases := []struct {
		name          string
		status        booking.Status
		expectChanged bool
		expectStatus  booking.Status
		errIs         error
	}{
		{name: "confirmed is cancelled", status: booking.StatusConfirmed, expectChanged: true, expectStatus: booking.StatusCancelled},
		{name: "already cancelled is a no-op", status: booking.StatusCancelled, expectChanged: false, expectStatus: booking.StatusCancelled},
		{name: "rejected cannot be cancelled", status: booking.StatusRejected, expectStatus: booking.StatusRejected, errIs: booking.ErrNotCancellable},
		{name: "pending cannot be cancelled", status: booking.StatusPending, expectStatus: booking.StatusPending, errIs: booking.ErrNotCancellable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := booking.ReconstructBooking(uuid.New(), uuid.New(), "2024-07-01", 1, uuid.New(), tc.status, nil, t0, t0)

			changed, err := b.Cancel(later)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrConflict))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectChanged, changed)
			assert.Equal(t, tc.expectStatus, b.Status())
			if tc.expectChanged {
				assert.Equal(t, later, b.StatusChangedAt())
			} else {
				assert.Equal(t, t0, b.StatusChangedAt())
			}
		})
	}
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.HoldsCapacity())
	assert.False(t, booking.StatusCancelled.HoldsCapacity())
	assert.False(t, booking.StatusRejected.HoldsCapacity())
	assert.False(t, booking.Status("confirmed").IsValid())
}
