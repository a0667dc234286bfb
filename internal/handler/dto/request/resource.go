package request

import (
	"reservation-hub/internal/usecase/commands"
)

type RegisterResourceRequest struct {
	Kind          string   `json:"kind" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	CapacityTotal int      `json:"capacityTotal" binding:"required"`
	TimeUnits     []string `json:"timeUnits"`
}

func (r *RegisterResourceRequest) ToCommand() commands.RegisterResourceRequest {
	return commands.RegisterResourceRequest{
		Kind:          r.Kind,
		Name:          r.Name,
		CapacityTotal: r.CapacityTotal,
		TimeUnits:     r.TimeUnits,
	}
}
