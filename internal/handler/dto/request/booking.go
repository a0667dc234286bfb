package request

import (
	"reservation-hub/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	// Empty books the resource without a time unit.
	TimeUnit string `json:"timeUnit"`
	Quantity *int   `json:"quantity" binding:"required"`
}

func (r *ReserveRequest) ToCommand(idempotencyKey *uuid.UUID) commands.ReserveRequest {
	return commands.ReserveRequest{
		ResourceID:     r.ResourceID,
		TimeUnit:       r.TimeUnit,
		Quantity:       *r.Quantity,
		IdempotencyKey: idempotencyKey,
	}
}
