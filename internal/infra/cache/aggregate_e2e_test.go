//go:build e2e

package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/infra/cache"
	"reservation-hub/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
	redisErr    error
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	redisOnce.Do(func() {
		port, err := nat.NewPort("tcp", "6379")
		if err != nil {
			redisErr = err
			return
		}

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{string(port)},
				WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			redisErr = err
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			redisErr = err
			return
		}
		mapped, err := container.MappedPort(ctx, port)
		if err != nil {
			redisErr = err
			return
		}

		redisClient, redisErr = cache.NewRedisClient(ctx, config.RedisConfig{Addr: fmt.Sprintf("%s:%s", host, mapped.Port())})
	})
	require.NoError(t, redisErr)
	return redisClient
}

func TestRedisAggregateCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisAggregateCache(setupRedis(t), time.Minute)
	entityID := uuid.New()

	_, hit, err := c.Get(ctx, resource.KindRestaurant, entityID)
	require.NoError(t, err)
	assert.False(t, hit, "empty cache should miss")

	gen, err := c.Generation(ctx, resource.KindRestaurant, entityID)
	require.NoError(t, err)
	assert.Zero(t, gen)

	require.NoError(t, c.Set(ctx, resource.KindRestaurant, entityID, review.Aggregate{Count: 2, Sum: 6}, gen))
	agg, hit, err := c.Get(ctx, resource.KindRestaurant, entityID)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, review.Aggregate{Count: 2, Sum: 6}, agg)

	require.NoError(t, c.Invalidate(ctx, resource.KindRestaurant, entityID))
	_, hit, err = c.Get(ctx, resource.KindRestaurant, entityID)
	require.NoError(t, err)
	assert.False(t, hit, "invalidated entry should miss")

	gen, err = c.Generation(ctx, resource.KindRestaurant, entityID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestRedisAggregateCache_SetNeverGoesBackwards(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisAggregateCache(setupRedis(t), time.Minute)

	t.Run("lower count from a slow reader is refused", func(t *testing.T) {
		entityID := uuid.New()
		gen, err := c.Generation(ctx, resource.KindEvent, entityID)
		require.NoError(t, err)

		// Submit commits {2, 6} and stores it while a reader still holds {1, 4}.
		require.NoError(t, c.Set(ctx, resource.KindEvent, entityID, review.Aggregate{Count: 2, Sum: 6}, gen))
		require.NoError(t, c.Set(ctx, resource.KindEvent, entityID, review.Aggregate{Count: 1, Sum: 4}, gen))

		agg, hit, err := c.Get(ctx, resource.KindEvent, entityID)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, review.Aggregate{Count: 2, Sum: 6}, agg)
	})

	t.Run("fill from before an invalidation is refused", func(t *testing.T) {
		entityID := uuid.New()
		stale, err := c.Generation(ctx, resource.KindEvent, entityID)
		require.NoError(t, err)

		require.NoError(t, c.Invalidate(ctx, resource.KindEvent, entityID))
		require.NoError(t, c.Set(ctx, resource.KindEvent, entityID, review.Aggregate{Count: 1, Sum: 4}, stale))

		_, hit, err := c.Get(ctx, resource.KindEvent, entityID)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("recompute may lower the count in a new generation", func(t *testing.T) {
		entityID := uuid.New()
		require.NoError(t, c.Set(ctx, resource.KindActivity, entityID, review.Aggregate{Count: 3, Sum: 9}, 0))

		require.NoError(t, c.Invalidate(ctx, resource.KindActivity, entityID))
		gen, err := c.Generation(ctx, resource.KindActivity, entityID)
		require.NoError(t, err)
		require.NoError(t, c.Set(ctx, resource.KindActivity, entityID, review.Aggregate{Count: 2, Sum: 6}, gen))

		agg, hit, err := c.Get(ctx, resource.KindActivity, entityID)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, review.Aggregate{Count: 2, Sum: 6}, agg)
	})

	t.Run("concurrent submits keep the highest count", func(t *testing.T) {
		entityID := uuid.New()
		var wg sync.WaitGroup
		for i := int64(1); i <= 10; i++ {
			wg.Add(1)
			go func(n int64) {
				defer wg.Done()
				assert.NoError(t, c.Set(ctx, resource.KindService, entityID, review.Aggregate{Count: n, Sum: 3 * n}, 0))
			}(i)
		}
		wg.Wait()

		agg, hit, err := c.Get(ctx, resource.KindService, entityID)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, review.Aggregate{Count: 10, Sum: 30}, agg)
	})
}
