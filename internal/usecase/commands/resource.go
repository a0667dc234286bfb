package commands

import (
	"context"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/pkg/clock"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterResourceRequest struct {
	Kind          string
	Name          string
	CapacityTotal int
	TimeUnits     []string
}

//go:generate go run go.uber.org/mock/mockgen -source=resource.go -destination=../../../tests/mock/commands/resource_mock.go -package=commandsmock
type ResourceCommands interface {
	Register(ctx context.Context, req RegisterResourceRequest, actor identity.Identity) (uuid.UUID, error)
}

type resourceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceUseCase(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *resourceUseCaseImpl) Register(ctx context.Context, req RegisterResourceRequest, actor identity.Identity) (uuid.UUID, error) {
	if actor.IsZero() {
		return uuid.Nil, ErrUnauthenticated
	}
	if !actor.IsOwner {
		return uuid.Nil, ErrForbidden
	}

	kind, err := resource.ParseKind(req.Kind)
	if err != nil {
		return uuid.Nil, err
	}

	res, err := resource.NewResource(uuid.Nil, kind, req.Name, actor.UserID, req.CapacityTotal, req.TimeUnits, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resources().Create(ctx, tx.DB(), res)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return res.ID(), nil
}
