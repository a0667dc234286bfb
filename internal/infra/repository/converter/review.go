package converter

import (
	"reservation-hub/internal/domain/review"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:          r.ID(),
		EntityType:  r.EntityType().String(),
		EntityID:    r.EntityID(),
		UserID:      r.UserID(),
		DisplayName: r.DisplayName(),
		Rating:      int16(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		Comment:     pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
