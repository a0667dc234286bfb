//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/pkg/config"
	pkgjwt "reservation-hub/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Claims describes a token minted the way the external identity provider does.
type Claims struct {
	UserID      uuid.UUID
	DisplayName string
	IsOwner     bool
	Issuer      string
	// TTL defaults to one hour; negative values yield an expired token.
	TTL time.Duration
}

func SignToken(t *testing.T, secret string, c Claims) string {
	t.Helper()

	ttl := c.TTL
	if ttl == 0 {
		ttl = time.Hour
	}
	now := time.Now()
	claims := pkgjwt.Claims{
		UserID:      c.UserID,
		DisplayName: c.DisplayName,
		IsOwner:     c.IsOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// Persona is a caller with a ready-to-use bearer token.
type Persona struct {
	Identity identity.Identity
	Token    string
}

func (h *JWTHelper) User(t *testing.T, displayName string) Persona {
	t.Helper()
	return h.persona(t, displayName, false)
}

func (h *JWTHelper) Owner(t *testing.T, displayName string) Persona {
	t.Helper()
	return h.persona(t, displayName, true)
}

func (h *JWTHelper) GenerateToken(t *testing.T, id identity.Identity) string {
	t.Helper()
	return SignToken(t, h.cfg.Secret, Claims{
		UserID:      id.UserID,
		DisplayName: id.DisplayName,
		IsOwner:     id.IsOwner,
		Issuer:      h.cfg.Issuer,
	})
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, id identity.Identity) string {
	t.Helper()
	// Past the configured leeway so validation cannot accept it.
	return SignToken(t, h.cfg.Secret, Claims{
		UserID:      id.UserID,
		DisplayName: id.DisplayName,
		IsOwner:     id.IsOwner,
		Issuer:      h.cfg.Issuer,
		TTL:         -(h.cfg.Leeway + time.Minute),
	})
}

func (h *JWTHelper) persona(t *testing.T, displayName string, owner bool) Persona {
	t.Helper()
	id := identity.Identity{UserID: uuid.New(), DisplayName: displayName, IsOwner: owner}
	return Persona{Identity: id, Token: h.GenerateToken(t, id)}
}
