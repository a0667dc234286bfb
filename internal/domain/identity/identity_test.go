//go:build unit

package identity_test

import (
	"testing"

	"reservation-hub/internal/domain/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_CanActFor(t *testing.T) {
	user := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	testCases := []struct {
		name     string
		caller   identity.Identity
		expected bool
	}{
		{name: "the user themselves", caller: identity.Identity{UserID: user}, expected: true},
		{name: "owner of the resource", caller: identity.Identity{UserID: owner, IsOwner: true}, expected: true},
		{name: "resource owner without owner role", caller: identity.Identity{UserID: owner}, expected: false},
		{name: "owner role on another resource", caller: identity.Identity{UserID: stranger, IsOwner: true}, expected: false},
		{name: "zero identity", caller: identity.Identity{}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.caller.CanActFor(user, owner))
		})
	}
}
