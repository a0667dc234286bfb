package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/shared"
)

// ErrPublisherUnavailable marks publish failures caused by the broker being
// unreachable rather than by the event. They do not count as attempts.
var ErrPublisherUnavailable = errs.New("event publisher unavailable")

//go:generate go run go.uber.org/mock/mockgen -source=outbox_relay.go -destination=../../tests/mock/usecase/outbox_relay_mock.go -package=usecasemock
type EventPublisher interface {
	Publish(ctx context.Context, event shared.OutboxEvent) error
}

type RelayOptions struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// OutboxRelay moves committed outbox events to the broker. Delivery is at
// least once: an event published right before a failed commit is sent again.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher EventPublisher
	opts      RelayOptions

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher EventPublisher, opts RelayOptions) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		opts:      opts,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// RunOnce relays one batch and reports how many events were published.
// Publish failures are recorded on the event and do not fail the batch.
// When the broker is unreachable the remaining events are left untouched.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0

		events, err := tx.Outbox().ClaimPending(ctx, tx.DB(), r.opts.BatchSize)
		if err != nil {
			return err
		}

		for i, event := range events {
			if perr := r.publisher.Publish(ctx, event); perr != nil {
				if errs.Is(perr, ErrPublisherUnavailable) {
					// The rest of the batch stays pending for the next poll.
					slog.WarnContext(ctx, "event publisher unavailable, deferring batch",
						"event_id", event.ID.String(),
						"deferred", len(events)-i,
						"error", perr.Error())
					return nil
				}
				slog.WarnContext(ctx, "failed to publish outbox event",
					"event_id", event.ID.String(),
					"kind", event.Kind,
					"attempt", event.Attempts+1,
					"error", perr.Error())
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), event.ID, perr.Error(), r.opts.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkPublished(ctx, tx.DB(), event.ID); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

// Start polls until Stop is called. A full batch is followed immediately by
// another one so a backlog drains without waiting for the ticker.
func (r *OutboxRelay) Start(ctx context.Context) {
	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.opts.PollInterval)
		defer ticker.Stop()

		for {
			n, err := r.RunOnce(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "outbox relay batch failed", "error", err.Error())
			}
			if err == nil && n >= r.opts.BatchSize {
				select {
				case <-r.stop:
					return
				default:
					continue
				}
			}

			select {
			case <-r.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (r *OutboxRelay) Stop(ctx context.Context) error {
	r.once.Do(func() { close(r.stop) })
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
