//go:build unit

package review_test

import (
	"math/rand"
	"testing"

	"reservation-hub/internal/domain/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRatings(t *testing.T, values ...int) []review.Rating {
	t.Helper()
	out := make([]review.Rating, 0, len(values))
	for _, v := range values {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func TestAggregate_Mean(t *testing.T) {
	testCases := []struct {
		name     string
		ratings  []int
		expected review.Aggregate
		mean     float64
	}{
		{name: "no reviews", ratings: nil, expected: review.Aggregate{}, mean: 0},
		{name: "single review", ratings: []int{4}, expected: review.Aggregate{Count: 1, Sum: 4}, mean: 4},
		{name: "two reviews", ratings: []int{4, 2}, expected: review.Aggregate{Count: 2, Sum: 6}, mean: 3.0},
		{name: "fractional mean", ratings: []int{5, 4, 4}, expected: review.Aggregate{Count: 3, Sum: 13}, mean: 13.0 / 3.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			agg := review.AggregateOf(mustRatings(t, tc.ratings...)...)
			assert.Equal(t, tc.expected, agg)
			assert.InDelta(t, tc.mean, agg.Mean(), 1e-9)
		})
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	ratings := mustRatings(t, 1, 2, 3, 4, 5, 5, 3, 1, 2)
	want := review.AggregateOf(ratings...)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]review.Rating(nil), ratings...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, review.AggregateOf(shuffled...))
	}
}
