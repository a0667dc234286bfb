package response

import (
	"time"

	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	OwnerID       uuid.UUID `json:"ownerId"`
	CapacityTotal int       `json:"capacityTotal"`
	TimeUnits     []string  `json:"timeUnits"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	res := copyView[ResourceResponse](v)
	if res.TimeUnits == nil {
		res.TimeUnits = []string{}
	}
	return res
}

type AvailabilityResponse struct {
	CapacityTotal int `json:"capacityTotal"`
	Consumed      int `json:"consumed"`
	Remaining     int `json:"remaining"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return copyView[AvailabilityResponse](v)
}
