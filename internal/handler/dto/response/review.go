package response

import (
	"time"

	"reservation-hub/internal/usecase/commands"
	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmitReviewResponse struct {
	ReviewID uuid.UUID `json:"reviewId"`
}

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	EntityType  string    `json:"entityType"`
	EntityID    uuid.UUID `json:"entityId"`
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	Items      []*ReviewResponse `json:"items"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

func FromReviewList(views []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	return &ReviewListResponse{
		Items:      copyViews[ReviewResponse](views),
		NextCursor: cursorString(next),
	}
}

type RatingResponse struct {
	Count int64   `json:"count"`
	Sum   int64   `json:"sum"`
	Mean  float64 `json:"mean"`
}

func FromRatingAggregate(v *queries.RatingAggregateView) *RatingResponse {
	return copyView[RatingResponse](v)
}

type RecomputeResponse struct {
	Count   int64   `json:"count"`
	Sum     int64   `json:"sum"`
	Mean    float64 `json:"mean"`
	Drifted bool    `json:"drifted"`
}

func FromRecomputeResult(r *commands.RecomputeResult) *RecomputeResponse {
	return &RecomputeResponse{
		Count:   r.After.Count,
		Sum:     r.After.Sum,
		Mean:    r.After.Mean(),
		Drifted: r.Drifted,
	}
}
