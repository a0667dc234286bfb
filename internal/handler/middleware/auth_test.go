//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/handler/middleware"
	"reservation-hub/internal/pkg/config"
	"reservation-hub/internal/usecase"
	"reservation-hub/tests/common/httptest"
	usecasemock "reservation-hub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := identity.Identity{UserID: uuid.New(), DisplayName: "Ana", IsOwner: true}

	testCases := []struct {
		name         string
		header       map[string]string
		setupMock    func(m *usecasemock.MockIdentityGate)
		expectStatus int
	}{
		{
			name:         "valid bearer token",
			header:       map[string]string{"Authorization": "Bearer good"},
			setupMock:    func(m *usecasemock.MockIdentityGate) { m.EXPECT().Validate("good").Return(caller, nil) },
			expectStatus: http.StatusOK,
		},
		{
			name:         "missing header",
			setupMock:    func(m *usecasemock.MockIdentityGate) {},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "non-bearer scheme",
			header:       map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			setupMock:    func(m *usecasemock.MockIdentityGate) {},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: map[string]string{"Authorization": "Bearer expired"},
			setupMock: func(m *usecasemock.MockIdentityGate) {
				m.EXPECT().Validate("expired").Return(identity.Identity{}, usecase.ErrExpiredCredential)
			},
			expectStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := usecasemock.NewMockIdentityGate(ctrl)
			tc.setupMock(gate)

			router := gin.New()
			router.GET("/me", middleware.NewAuthMiddleware(gate).RequireAuth(), func(c *gin.Context) {
				id, ok := middleware.GetIdentity(c)
				assert.True(t, ok)
				assert.Equal(t, caller, id)
				c.Status(http.StatusOK)
			})

			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/me", nil, "", tc.header)
			if tc.expectStatus == http.StatusOK {
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httptest.AssertErrorCode(t, rec, tc.expectStatus, "UNAUTHENTICATED")
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	gate := usecasemock.NewMockIdentityGate(ctrl)
	gate.EXPECT().Validate("bad").Return(identity.Identity{}, usecase.ErrInvalidCredential)

	router := gin.New()
	router.GET("/public", middleware.NewAuthMiddleware(gate).OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetIdentity(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	for _, token := range []string{"", "bad"} {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestOptionalAuth_RateLimitBucketPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	gate := usecasemock.NewMockIdentityGate(ctrl)
	ana := identity.Identity{UserID: uuid.New(), DisplayName: "Ana"}
	ben := identity.Identity{UserID: uuid.New(), DisplayName: "Ben"}
	gate.EXPECT().Validate("ana").Return(ana, nil).Times(2)
	gate.EXPECT().Validate("ben").Return(ben, nil)

	limiter := middleware.NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.1, Burst: 1})
	router := gin.New()
	router.GET("/rating", middleware.NewAuthMiddleware(gate).OptionalAuth(), limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// All requests share one client address.
	assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, router, http.MethodGet, "/rating", nil, "ana").Code)
	assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, router, http.MethodGet, "/rating", nil, "ben").Code)
	assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, router, http.MethodGet, "/rating", nil, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, httptest.PerformRequest(t, router, http.MethodGet, "/rating", nil, "ana").Code)
}
