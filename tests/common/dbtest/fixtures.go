//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestResource inserts a resource with its time units. An empty unit
// list makes it bookable anytime.
func CreateTestResource(t *testing.T, db DBLike, kind, name string, ownerID uuid.UUID, capacity int, timeUnits ...string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO resources (id, kind, name, owner_id, capacity_total) VALUES ($1, $2, $3, $4, $5)",
		resourceID, kind, name, ownerID, capacity)
	require.NoError(t, err)

	for i, unit := range timeUnits {
		_, err := db.Exec(ctx,
			"INSERT INTO resource_time_units (resource_id, time_unit, position) VALUES ($1, $2, $3)",
			resourceID, unit, i)
		require.NoError(t, err)
	}

	return resourceID
}

// CreateTestReview bypasses the aggregate so tests can provoke drift.
func CreateTestReview(t *testing.T, db DBLike, entityType string, entityID, userID uuid.UUID, rating int) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reviews (id, entity_type, entity_id, user_id, display_name, rating, created_at) VALUES ($1, $2, $3, $4, $5, $6, now())",
		reviewID, entityType, entityID, userID, "Seeded", rating)
	require.NoError(t, err)
	return reviewID
}

func SetRatingAggregate(t *testing.T, db DBLike, entityType string, entityID uuid.UUID, count, sum int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO rating_aggregates (entity_type, entity_id, review_count, rating_sum)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (entity_type, entity_id) DO UPDATE
		SET review_count = EXCLUDED.review_count, rating_sum = EXCLUDED.rating_sum`,
		entityType, entityID, count, sum)
	require.NoError(t, err)
}

func ConsumedCapacity(t *testing.T, db DBLike, resourceID uuid.UUID, timeUnit string) int {
	t.Helper()

	var consumed int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT consumed FROM capacity_counters WHERE resource_id = $1 AND time_unit = $2), 0)",
		resourceID, timeUnit).Scan(&consumed)
	require.NoError(t, err)
	return consumed
}

func CountBookings(t *testing.T, db DBLike, resourceID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE resource_id = $1 AND status = $2",
		resourceID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOutboxEvents(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM outbox_events WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
