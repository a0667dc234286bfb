//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, resource.KindRestaurant, actual.EntityType())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent service!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "multibyte comment counts runes",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("é", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("entity and author validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown entity type",
				mutate: func(b *builder.ReviewBuilder) { b.EntityType = "hotel" },
				errIs:  resource.ErrInvalidKind,
			},
			{
				name:   "missing author",
				mutate: func(b *builder.ReviewBuilder) { b.WithUserID(uuid.Nil) },
				errIs:  review.ErrMissingAuthor,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		rv, err := review.NewReview(uuid.Nil, resource.KindEvent, uuid.New(), uuid.New(), "Bob", 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Trimmed comment", rv.Comment().String())
		require.NotNil(t, rv.Comment().Ptr())
	})

	t.Run("blank comment is absent", func(t *testing.T) {
		rv, err := review.NewReview(uuid.Nil, resource.KindEvent, uuid.New(), uuid.New(), "Bob", 4, "   ", time.Now())
		require.NoError(t, err)

		assert.True(t, rv.Comment().IsEmpty())
		assert.Nil(t, rv.Comment().Ptr())
	})

	t.Run("validation errors carry their class", func(t *testing.T) {
		_, err := builder.NewReviewBuilder().WithRating(6).BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = builder.NewReviewBuilder().WithUserID(uuid.Nil).BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
