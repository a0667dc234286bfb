package bootstrap

import (
	"context"
	"log/slog"

	"reservation-hub/internal/infra/cache"
	"reservation-hub/internal/pkg/config"
	"reservation-hub/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAggregateCache,
	),
)

// NewAggregateCache falls back to a no-op cache when Redis is disabled, so
// every aggregate read goes to Postgres.
func NewAggregateCache(lc fx.Lifecycle, cfg config.Config) (shared.AggregateCache, error) {
	if !cfg.Redis.Enabled {
		slog.Info("Rating aggregate cache disabled")
		return cache.NewNoopAggregateCache(), nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("Rating aggregate cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	return cache.NewRedisAggregateCache(client, cfg.Redis.TTL), nil
}
