//go:build unit || e2e

package builder

import (
	"time"

	"reservation-hub/internal/domain/resource"
	reqdto "reservation-hub/internal/handler/dto/request"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
	"reservation-hub/internal/usecase/queries"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID            uuid.UUID
	Kind          resource.Kind
	Name          string
	OwnerID       uuid.UUID
	CapacityTotal int
	TimeUnits     []string
	CreatedAt     time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:            uuid.New(),
		Kind:          resource.KindEvent,
		Name:          "Jazz Night",
		OwnerID:       uuid.New(),
		CapacityTotal: 2,
		TimeUnits:     []string{"2026-03-01", "2026-03-02"},
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() *resource.Resource {
	return resource.ReconstructResource(r.ID, r.Kind, r.Name, r.OwnerID, r.CapacityTotal, r.TimeUnits, r.CreatedAt)
}

func (r *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		ID:            r.ID,
		Kind:          r.Kind.String(),
		Name:          r.Name,
		OwnerID:       r.OwnerID,
		CapacityTotal: int32(r.CapacityTotal),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func (r *ResourceBuilder) BuildSnapshot() *shared.ResourceSnapshot {
	return &shared.ResourceSnapshot{
		ID:            r.ID,
		Kind:          r.Kind.String(),
		Name:          r.Name,
		OwnerID:       r.OwnerID,
		CapacityTotal: r.CapacityTotal,
		TimeUnits:     append([]string(nil), r.TimeUnits...),
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	units := append([]string{}, r.TimeUnits...)
	return &queries.ResourceView{
		ID:            r.ID,
		Kind:          r.Kind.String(),
		Name:          r.Name,
		OwnerID:       r.OwnerID,
		CapacityTotal: r.CapacityTotal,
		TimeUnits:     units,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ResourceBuilder) BuildRegisterRequestDTO() reqdto.RegisterResourceRequest {
	return reqdto.RegisterResourceRequest{
		Kind:          r.Kind.String(),
		Name:          r.Name,
		CapacityTotal: r.CapacityTotal,
		TimeUnits:     append([]string(nil), r.TimeUnits...),
	}
}

// Fluent builder methods
func (r *ResourceBuilder) WithKind(kind resource.Kind) *ResourceBuilder {
	r.Kind = kind
	return r
}

func (r *ResourceBuilder) WithOwner(ownerID uuid.UUID) *ResourceBuilder {
	r.OwnerID = ownerID
	return r
}

func (r *ResourceBuilder) WithCapacity(total int) *ResourceBuilder {
	r.CapacityTotal = total
	return r
}

func (r *ResourceBuilder) WithTimeUnits(units ...string) *ResourceBuilder {
	r.TimeUnits = units
	return r
}

// AsAnytime drops the time units so bookings carry no time unit.
func (r *ResourceBuilder) AsAnytime() *ResourceBuilder {
	r.TimeUnits = nil
	return r
}
