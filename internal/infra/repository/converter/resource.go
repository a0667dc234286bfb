package converter

import (
	"reservation-hub/internal/domain/resource"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/pgconv"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	return sqlc.CreateResourceParams{
		ID:            r.ID(),
		Kind:          r.Kind().String(),
		Name:          r.Name(),
		OwnerID:       r.OwnerID(),
		CapacityTotal: int32(r.CapacityTotal()), // #nosec G115 -- capped by MaxCapacityTotal
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ResourceTimeUnitParams(r *resource.Resource) []sqlc.CreateResourceTimeUnitParams {
	units := r.TimeUnits()
	params := make([]sqlc.CreateResourceTimeUnitParams, 0, len(units))
	for i, u := range units {
		params = append(params, sqlc.CreateResourceTimeUnitParams{
			ResourceID: r.ID(),
			TimeUnit:   u,
			Position:   int32(i), // #nosec G115 -- capped by MaxTimeUnits
		})
	}
	return params
}
