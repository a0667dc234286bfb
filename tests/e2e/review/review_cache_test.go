//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"reservation-hub/internal/handler/dto/response"
	"reservation-hub/tests/common/authtest"
	"reservation-hub/tests/common/dbtest"
	"reservation-hub/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReviewCacheSuite runs the rating endpoints with the Redis aggregate cache on.
type ReviewCacheSuite struct {
	ReviewSuite
}

func (s *ReviewCacheSuite) SetupSuite() {
	s.WithCache = true
	s.ReviewSuite.SetupSuite()
}

func TestReviewCacheSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewCacheSuite))
}

func (s *ReviewCacheSuite) TestCachedRating() {
	s.Run("Normal case: a cached empty rating is replaced by the next submit", func() {
		t := s.T()
		require.True(t, s.Config.Redis.Enabled)
		owner := s.jwt.Owner(t, "Chef")
		entityID := dbtest.CreateTestResource(t, s.DB, "restaurant", "Bistro", owner.Identity.UserID, 10)

		assert.Equal(t, response.RatingResponse{}, s.getRating(t, "restaurant", entityID))

		u := s.jwt.User(t, "Guest")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewBody("restaurant", entityID, 4, ""), u.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		assert.Equal(t, response.RatingResponse{Count: 1, Sum: 4, Mean: 4.0}, s.getRating(t, "restaurant", entityID))
	})

	s.Run("Concurrency: readers racing submitters never leave a lower count behind", func() {
		t := s.T()
		owner := s.jwt.Owner(t, "Guide")
		entityID := dbtest.CreateTestResource(t, s.DB, "activity", "Kayak", owner.Identity.UserID, 10)

		const reviewers = 12
		users := make([]authtest.Persona, reviewers)
		for i := range users {
			users[i] = s.jwt.User(t, fmt.Sprintf("Paddler %d", i))
		}

		var wg sync.WaitGroup
		for i, u := range users {
			wg.Add(2)
			go func(token string, rating int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewBody("activity", entityID, rating, ""), token)
				assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			}(u.Token, i%5+1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingURL, "activity", entityID), nil, "")
				assert.Equal(t, http.StatusOK, w.Code)
			}()
		}
		wg.Wait()

		var sum int64
		for i := range reviewers {
			sum += int64(i%5 + 1)
		}
		got := s.getRating(t, "activity", entityID)
		assert.Equal(t, int64(reviewers), got.Count)
		assert.Equal(t, sum, got.Sum)
	})

	s.Run("Normal case: recompute replaces a cached drifted aggregate", func() {
		t := s.T()
		owner := s.jwt.Owner(t, "Barber")
		entityID := dbtest.CreateTestResource(t, s.DB, "service", "Shave", owner.Identity.UserID, 1)
		dbtest.CreateTestReview(t, s.DB, "service", entityID, uuid.New(), 5)
		dbtest.SetRatingAggregate(t, s.DB, "service", entityID, 4, 20)

		// the drifted row is now cached
		assert.Equal(t, response.RatingResponse{Count: 4, Sum: 20, Mean: 5.0}, s.getRating(t, "service", entityID))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(recomputeURL, "service", entityID), nil, owner.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		assert.Equal(t, response.RatingResponse{Count: 1, Sum: 5, Mean: 5.0}, s.getRating(t, "service", entityID))
	})
}
