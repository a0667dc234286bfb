package shared

import (
	"encoding/json"
	"time"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceSnapshot struct {
	ID            uuid.UUID
	Kind          string
	Name          string
	OwnerID       uuid.UUID
	CapacityTotal int
	TimeUnits     []string
	CreatedAt     time.Time
}

func (s *ResourceSnapshot) ToDomain() *resource.Resource {
	return resource.ReconstructResource(s.ID, resource.Kind(s.Kind), s.Name, s.OwnerID, s.CapacityTotal, s.TimeUnits, s.CreatedAt)
}

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	TimeUnit   string
	Quantity   int
	UserID     uuid.UUID
	Status     booking.Status
}

type OutboxEvent struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   json.RawMessage
	Attempts  int
	CreatedAt time.Time
}
