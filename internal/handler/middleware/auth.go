package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/handler/httperr"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	gate usecase.IdentityGate
}

const (
	ctxIdentityKey = "identity"
	ctxClaimsKey   = "jwt_claims"

	codeUnauthenticated = "UNAUTHENTICATED"
)

var errMissingCredential = errs.Class("bearer credential required", errs.ErrUnauthenticated)

func NewAuthMiddleware(gate usecase.IdentityGate) *AuthMiddleware {
	return &AuthMiddleware{
		gate: gate,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCredential, codeUnauthenticated, "Access token required", nil)
			return
		}

		id, err := m.gate.Validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, codeUnauthenticated, "Invalid or expired token", nil)
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		id, err := m.gate.Validate(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// Credentials are only read from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func setIdentity(c *gin.Context, id identity.Identity) {
	c.Set(ctxIdentityKey, id)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id":  id.UserID.String(),
		"is_owner": id.IsOwner,
	})
}

// SetIdentity attaches an already validated identity to the request.
func SetIdentity(c *gin.Context, id identity.Identity) {
	setIdentity(c, id)
}

// GetIdentity returns the caller, or the zero Identity for anonymous requests.
func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}

	id, ok := v.(identity.Identity)
	return id, ok
}
