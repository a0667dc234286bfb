package bootstrap

import (
	"reservation-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewDBConfig,
	),
)

func NewDBConfig(cfg config.Config) config.DBConfig {
	return cfg.DB
}
