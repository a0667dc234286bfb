package bootstrap

import (
	"context"
	"log/slog"

	"reservation-hub/internal/infra/telemetry"
	"reservation-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(
		SetupTelemetry,
	),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.OTLPEndpoint != "" {
		slog.Info("Tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint, "service", cfg.Telemetry.ServiceName)
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
