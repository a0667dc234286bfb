//go:build unit

package resource_test

import (
	"strings"
	"testing"
	"time"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewResource(t *testing.T) {
	owner := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		r, err := resource.NewResource(uuid.Nil, resource.KindActivity, "  Kayak tour ", owner, 4, []string{"2024-07-01", "2024-07-02T09:30"}, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Kayak tour", r.Name())
		assert.Equal(t, 4, r.CapacityTotal())
		assert.Equal(t, []string{"2024-07-01", "2024-07-02T09:30"}, r.TimeUnits())
		assert.True(t, r.IsOwnedBy(owner))
		assert.Equal(t, now, r.CreatedAt())
	})

	testCases := []struct {
		name      string
		kind      resource.Kind
		resName   string
		owner     uuid.UUID
		capacity  int
		timeUnits []string
		errIs     error
	}{
		{name: "unknown kind", kind: "hotel", resName: "x", owner: owner, capacity: 1, errIs: resource.ErrInvalidKind},
		{name: "blank name", kind: resource.KindEvent, resName: "   ", owner: owner, capacity: 1, errIs: resource.ErrEmptyResourceName},
		{name: "name too long", kind: resource.KindEvent, resName: strings.Repeat("a", 201), owner: owner, capacity: 1, errIs: resource.ErrResourceNameTooLong},
		{name: "missing owner", kind: resource.KindEvent, resName: "x", owner: uuid.Nil, capacity: 1, errIs: resource.ErrMissingOwner},
		{name: "zero capacity", kind: resource.KindEvent, resName: "x", owner: owner, capacity: 0, errIs: resource.ErrInvalidCapacity},
		{name: "capacity above maximum", kind: resource.KindEvent, resName: "x", owner: owner, capacity: resource.MaxCapacityTotal + 1, errIs: resource.ErrInvalidCapacity},
		{name: "negative capacity", kind: resource.KindEvent, resName: "x", owner: owner, capacity: -3, errIs: resource.ErrInvalidCapacity},
		{name: "malformed time unit", kind: resource.KindEvent, resName: "x", owner: owner, capacity: 1, timeUnits: []string{"July 1st"}, errIs: resource.ErrMalformedTimeUnit},
		{name: "duplicate time unit", kind: resource.KindEvent, resName: "x", owner: owner, capacity: 1, timeUnits: []string{"2024-07-01", "2024-07-01"}, errIs: resource.ErrDuplicateTimeUnit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := resource.NewResource(uuid.New(), tc.kind, tc.resName, tc.owner, tc.capacity, tc.timeUnits, now)
			require.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
			assert.Nil(t, r)
		})
	}
}

func TestResource_CheckRequest(t *testing.T) {
	owner := uuid.New()
	dated, err := resource.NewResource(uuid.New(), resource.KindRestaurant, "Bistro", owner, 2, []string{"2024-07-01"}, now)
	require.NoError(t, err)
	anytime, err := resource.NewResource(uuid.New(), resource.KindService, "Locksmith", owner, 3, nil, now)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		res      *resource.Resource
		timeUnit string
		quantity int
		errIs    error
	}{
		{name: "declared unit within capacity", res: dated, timeUnit: "2024-07-01", quantity: 2},
		{name: "undeclared unit", res: dated, timeUnit: "2024-07-02", quantity: 1, errIs: resource.ErrInvalidTimeUnit},
		{name: "anytime on dated resource", res: dated, timeUnit: resource.Anytime, quantity: 1, errIs: resource.ErrInvalidTimeUnit},
		{name: "quantity above capacity", res: dated, timeUnit: "2024-07-01", quantity: 3, errIs: resource.ErrInvalidQuantity},
		{name: "zero quantity", res: dated, timeUnit: "2024-07-01", quantity: 0, errIs: resource.ErrInvalidQuantity},
		{name: "anytime resource without unit", res: anytime, timeUnit: resource.Anytime, quantity: 3},
		{name: "anytime resource with unit", res: anytime, timeUnit: "2024-07-01", quantity: 1, errIs: resource.ErrInvalidTimeUnit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.res.CheckRequest(tc.timeUnit, tc.quantity)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"restaurant", "event", "activity", "service"} {
		k, err := resource.ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, k.String())
	}

	_, err := resource.ParseKind("Restaurant")
	assert.ErrorIs(t, err, resource.ErrInvalidKind)
}

func TestResource_TimeUnitsIsCopy(t *testing.T) {
	r, err := resource.NewResource(uuid.New(), resource.KindEvent, "Gig", uuid.New(), 10, []string{"2024-07-01T20:00"}, now)
	require.NoError(t, err)

	units := r.TimeUnits()
	units[0] = "tampered"

	assert.True(t, r.Offers("2024-07-01T20:00"))
}
