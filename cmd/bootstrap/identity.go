package bootstrap

import (
	"reservation-hub/internal/pkg/config"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/pkg/jwt"
	"reservation-hub/internal/usecase"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewJWTService,
		usecase.NewIdentityGate,
	),
)

// envconfig's required tag accepts an empty value, so reject it here.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Secret == "" {
		return nil, errs.New("JWT_SECRET must not be empty")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Leeway), nil
}
