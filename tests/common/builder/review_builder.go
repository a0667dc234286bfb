//go:build unit || e2e

package builder

import (
	"time"

	"reservation-hub/internal/domain/resource"
	domreview "reservation-hub/internal/domain/review"
	reqdto "reservation-hub/internal/handler/dto/request"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID          uuid.UUID
	EntityType  string
	EntityID    uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Rating      int
	Comment     string
	CreatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:          uuid.New(),
		EntityType:  string(resource.KindRestaurant),
		EntityID:    uuid.New(),
		UserID:      uuid.New(),
		DisplayName: "Reviewer",
		Rating:      5,
		Comment:     "Excellent service!",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ID, resource.Kind(r.EntityType), r.EntityID, r.UserID, r.DisplayName, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	comment := pgtype.Text{}
	if r.Comment != "" {
		comment = pgconv.StringToPgtype(r.Comment)
	}
	return sqlc.Reviews{
		ID:          r.ID,
		EntityType:  r.EntityType,
		EntityID:    r.EntityID,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Rating:      int16(r.Rating),
		Comment:     comment,
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *ReviewBuilder) BuildSubmitRequestDTO() reqdto.SubmitReviewRequest {
	rating := r.Rating
	req := reqdto.SubmitReviewRequest{
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Rating:     &rating,
	}
	if r.Comment != "" {
		comment := r.Comment
		req.Comment = &comment
	}
	return req
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	view := &queries.ReviewView{
		ID:          r.ID,
		EntityType:  r.EntityType,
		EntityID:    r.EntityID,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
	}
	if r.Comment != "" {
		comment := r.Comment
		view.Comment = &comment
	}
	return view
}

// Fluent builder methods
func (r *ReviewBuilder) WithEntity(entityType resource.Kind, entityID uuid.UUID) *ReviewBuilder {
	r.EntityType = string(entityType)
	r.EntityID = entityID
	return r
}

func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Poor service"
	return r
}
