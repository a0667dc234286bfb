package usecase

import (
	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/pkg/jwt"
)

var (
	ErrInvalidCredential = errs.Class("invalid credential", errs.ErrUnauthenticated)
	ErrExpiredCredential = errs.Class("credential expired", errs.ErrUnauthenticated)
)

// IdentityGate turns a bearer credential into the caller's Identity.
// It validates only; credentials are issued elsewhere.
//
//go:generate go run go.uber.org/mock/mockgen -source=identity_gate.go -destination=../../tests/mock/usecase/identity_gate_mock.go -package=usecasemock
type IdentityGate interface {
	Validate(token string) (identity.Identity, error)
}

type identityGateImpl struct {
	jwtService *jwt.Service
}

func NewIdentityGate(jwtService *jwt.Service) IdentityGate {
	return &identityGateImpl{
		jwtService: jwtService,
	}
}

func (g *identityGateImpl) Validate(token string) (identity.Identity, error) {
	if token == "" {
		return identity.Identity{}, ErrInvalidCredential
	}

	claims, err := g.jwtService.ValidateToken(token)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return identity.Identity{}, ErrExpiredCredential
		}
		return identity.Identity{}, ErrInvalidCredential
	}

	return identity.Identity{
		UserID:      claims.UserID,
		DisplayName: claims.DisplayName,
		IsOwner:     claims.IsOwner,
	}, nil
}
