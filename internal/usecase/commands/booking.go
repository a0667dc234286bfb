package commands

import (
	"context"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/infra"
	"reservation-hub/internal/pkg/clock"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ReserveRequest struct {
	ResourceID     uuid.UUID
	TimeUnit       string
	Quantity       int
	IdempotencyKey *uuid.UUID
}

type ReserveResult struct {
	BookingID uuid.UUID
	Status    booking.Status
	// Replayed is set when an earlier request with the same idempotency key produced this booking.
	Replayed bool
}

type CancelResult struct {
	BookingID        uuid.UUID
	Status           booking.Status
	AlreadyCancelled bool
}

//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock
type BookingCommands interface {
	Reserve(ctx context.Context, req ReserveRequest, actor identity.Identity) (*ReserveResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (*CancelResult, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) Reserve(ctx context.Context, req ReserveRequest, actor identity.Identity) (result *ReserveResult, err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Reserve", trace.WithAttributes(
		attribute.String("resource.id", req.ResourceID.String()),
		attribute.String("booking.time_unit", req.TimeUnit),
		attribute.Int("booking.quantity", req.Quantity),
	))
	defer func() { endSpan(span, err) }()

	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	if req.IdempotencyKey != nil {
		prior, rerr := uc.replay(ctx, req, actor.UserID)
		if rerr != nil || prior != nil {
			return prior, rerr
		}
	}

	snap, err := uc.uow.CommandReads().ResourceByID(ctx, req.ResourceID)
	if err != nil {
		return nil, notFoundAs(err, ErrResourceNotFound)
	}
	res := snap.ToDomain()
	if err := res.CheckRequest(req.TimeUnit, req.Quantity); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := booking.NewPending(res.ID(), req.TimeUnit, req.Quantity, actor.UserID, req.IdempotencyKey, uc.clock.Now())
		if derr != nil {
			return derr
		}

		_, admitted, derr := tx.Capacity().Consume(ctx, tx.DB(), res.ID(), req.TimeUnit, res.CapacityTotal(), req.Quantity)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if admitted {
			derr = b.Confirm(now)
		} else {
			derr = b.Reject(now)
		}
		if derr != nil {
			return derr
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		event, derr := bookingEvent(b)
		if derr != nil {
			return derr
		}
		if derr = tx.Outbox().Enqueue(ctx, tx.DB(), event); derr != nil {
			return derr
		}

		result = &ReserveResult{BookingID: b.ID(), Status: b.Status()}
		return nil
	})
	if err != nil {
		// A concurrent request with the same key won the insert.
		if req.IdempotencyKey != nil && infra.IsKind(err, infra.KindDuplicateKey) {
			prior, rerr := uc.replay(ctx, req, actor.UserID)
			if rerr != nil {
				return nil, rerr
			}
			if prior != nil {
				return prior, nil
			}
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("booking.status", result.Status.String()))
	if result.Status == booking.StatusRejected {
		return nil, errs.Wrapf(ErrCapacityExceeded, "booking %s rejected", result.BookingID)
	}
	return result, nil
}

// replay returns the booking created by an earlier request with the same
// idempotency key, or nil when the key is unused.
func (uc *bookingUseCaseImpl) replay(ctx context.Context, req ReserveRequest, userID uuid.UUID) (*ReserveResult, error) {
	prior, err := uc.uow.CommandReads().BookingByIdempotencyKey(ctx, userID, *req.IdempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if prior.ResourceID != req.ResourceID || prior.TimeUnit != req.TimeUnit || prior.Quantity != req.Quantity {
		return nil, ErrIdempotencyKeyMismatch
	}
	if prior.Status == booking.StatusRejected {
		return nil, errs.Wrapf(ErrCapacityExceeded, "booking %s rejected", prior.ID)
	}
	return &ReserveResult{BookingID: prior.ID, Status: prior.Status, Replayed: true}, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (result *CancelResult, err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.Cancel", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer func() { endSpan(span, err) }()

	if actor.IsZero() {
		return nil, ErrUnauthenticated
	}

	if err := uc.authorizeCancel(ctx, bookingID, actor); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}

		changed, derr := b.Cancel(uc.clock.Now())
		if derr != nil {
			return derr
		}
		if !changed {
			result = &CancelResult{BookingID: b.ID(), Status: b.Status(), AlreadyCancelled: true}
			return nil
		}

		if _, derr = tx.Capacity().Release(ctx, tx.DB(), b.ResourceID(), b.TimeUnit(), b.Quantity()); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrapf(ErrLedgerInconsistent, "booking %s", b.ID())
			}
			return derr
		}

		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b, booking.StatusConfirmed); derr != nil {
			return derr
		}

		event, derr := bookingEvent(b)
		if derr != nil {
			return derr
		}
		if derr = tx.Outbox().Enqueue(ctx, tx.DB(), event); derr != nil {
			return derr
		}

		result = &CancelResult{BookingID: b.ID(), Status: b.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// authorizeCancel runs before the transaction: the booking's user may cancel,
// and so may an owner identity that owns the booked resource.
func (uc *bookingUseCaseImpl) authorizeCancel(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) error {
	reads := uc.uow.CommandReads()

	snap, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		return notFoundAs(err, ErrBookingNotFound)
	}
	if snap.UserID == actor.UserID {
		return nil
	}
	if !actor.IsOwner {
		return ErrForbidden
	}

	res, err := reads.ResourceByID(ctx, snap.ResourceID)
	if err != nil {
		return notFoundAs(err, ErrResourceNotFound)
	}
	if !actor.CanActFor(snap.UserID, res.OwnerID) {
		return ErrForbidden
	}
	return nil
}
