package bootstrap

import (
	"context"
	"log/slog"

	"reservation-hub/internal/infra/messaging"
	"reservation-hub/internal/pkg/config"
	"reservation-hub/internal/usecase"
	"reservation-hub/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Invoke(
		StartOutboxRelay,
	),
)

// StartOutboxRelay runs the relay for the application's lifetime. Without a
// broker URL the outbox keeps accumulating pending events.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork) error {
	if cfg.AMQP.URL == "" {
		slog.Warn("AMQP_URL not set, outbox relay disabled")
		return nil
	}

	publisher, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return err
	}

	relay := usecase.NewOutboxRelay(uow, publisher, usecase.RelayOptions{
		PollInterval: cfg.AMQP.PollInterval,
		BatchSize:    int(cfg.AMQP.BatchSize),
		MaxAttempts:  int(cfg.AMQP.MaxAttempts),
	})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context is cancelled once startup completes.
			relay.Start(context.Background())
			slog.Info("Outbox relay started", "exchange", cfg.AMQP.Exchange)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopErr := relay.Stop(ctx)
			if err := publisher.Close(); err != nil {
				slog.Warn("Failed to close AMQP publisher", "error", err)
			}
			return stopErr
		},
	})
	return nil
}
