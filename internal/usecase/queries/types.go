package queries

import (
	"time"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	OwnerID       uuid.UUID `json:"ownerId"`
	CapacityTotal int       `json:"capacityTotal"`
	TimeUnits     []string  `json:"timeUnits"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (v *ResourceView) offers(timeUnit string) bool {
	if len(v.TimeUnits) == 0 {
		return timeUnit == ""
	}
	for _, u := range v.TimeUnits {
		if u == timeUnit {
			return true
		}
	}
	return false
}

type AvailabilityView struct {
	ResourceID    uuid.UUID `json:"resourceId"`
	TimeUnit      string    `json:"timeUnit,omitempty"`
	CapacityTotal int       `json:"capacityTotal"`
	Consumed      int       `json:"consumed"`
	Remaining     int       `json:"remaining"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resourceId"`
	TimeUnit        string    `json:"timeUnit,omitempty"`
	Quantity        int       `json:"quantity"`
	UserID          uuid.UUID `json:"userId"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	StatusChangedAt time.Time `json:"statusChangedAt"`
}

type ReviewView struct {
	ID          uuid.UUID `json:"id"`
	EntityType  string    `json:"entityType"`
	EntityID    uuid.UUID `json:"entityId"`
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RatingAggregateView struct {
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	Count      int64     `json:"count"`
	Sum        int64     `json:"sum"`
	Mean       float64   `json:"mean"`
}
