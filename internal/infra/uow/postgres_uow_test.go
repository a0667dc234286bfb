//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"reservation-hub/internal/infra"
	"reservation-hub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "statement timeout", err: &pgconn.PgError{Code: "57014"}, expected: false},
		{name: "wrapped by repository", err: infra.WrapRepoErr("failed to consume capacity", &pgconn.PgError{Code: "55P03"}), expected: true},
		{name: "plain error", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRetryableError(tc.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		expectedMin := time.Duration(1<<attempt) * base
		expectedMax := expectedMin + expectedMin/5

		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, expectedMin, "attempt %d", attempt)
		assert.LessOrEqual(t, got, expectedMax, "attempt %d", attempt)
	}
}

func TestExhausted(t *testing.T) {
	u := &PostgresUoW{maxRetries: 3}

	lockErr := &pgconn.PgError{Code: "55P03"}
	marked := u.exhausted(lockErr, 3)
	assert.True(t, errs.Is(marked, errs.ErrTransient), "lock timeout after retries should be transient")

	other := errors.New("constraint")
	assert.Same(t, other, u.exhausted(other, 0))
}

func TestPgDuration(t *testing.T) {
	assert.Equal(t, "2000ms", pgDuration(2*time.Second))
	assert.Equal(t, "0ms", pgDuration(0))
}
