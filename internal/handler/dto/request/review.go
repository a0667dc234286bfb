package request

import (
	"reservation-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

// Range and length checks are left to the domain so the caller gets the
// specific rejection code.
type SubmitReviewRequest struct {
	EntityType string    `json:"entityType" binding:"required"`
	EntityID   uuid.UUID `json:"entityId" binding:"required"`
	Rating     *int      `json:"rating" binding:"required"`
	Comment    *string   `json:"comment"`
}

func (r *SubmitReviewRequest) ToCommand() commands.SubmitReviewRequest {
	cmd := commands.SubmitReviewRequest{
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Rating:     *r.Rating,
	}
	if r.Comment != nil {
		cmd.Comment = *r.Comment
	}
	return cmd
}
