package queries

import (
	"context"

	"reservation-hub/internal/infra"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=resource.go -destination=../../../tests/mock/queries/resource_mock.go -package=queriesmock
type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	// ConsumedCapacity reads the ledger counter; a missing counter is 0.
	ConsumedCapacity(ctx context.Context, resourceID uuid.UUID, timeUnit string) (int, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	Availability(ctx context.Context, resourceID uuid.UUID, timeUnit string) (*AvailabilityView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *resourceQueriesImpl) Availability(ctx context.Context, resourceID uuid.UUID, timeUnit string) (*AvailabilityView, error) {
	res, err := q.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !res.offers(timeUnit) {
		return nil, ErrInvalidTimeUnit
	}

	consumed, err := q.store.ConsumedCapacity(ctx, resourceID, timeUnit)
	if err != nil {
		return nil, err
	}

	remaining := res.CapacityTotal - consumed
	if remaining < 0 {
		remaining = 0
	}
	return &AvailabilityView{
		ResourceID:    resourceID,
		TimeUnit:      timeUnit,
		CapacityTotal: res.CapacityTotal,
		Consumed:      consumed,
		Remaining:     remaining,
	}, nil
}
