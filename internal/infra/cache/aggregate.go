package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	aggregateKeyPrefix  = "rating:agg:"
	generationKeyPrefix = "rating:gen:"
)

var errCorruptEntry = errs.New("cached rating aggregate is corrupt")

// KEYS[1] entry hash, KEYS[2] generation counter.
// ARGV count, sum, generation, ttl in milliseconds.
var setAggregateScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[3]) < current then
  return 0
end
local cached = redis.call('HGET', KEYS[1], 'count')
if cached and tonumber(cached) > tonumber(ARGV[1]) then
  return 0
end
redis.call('HSET', KEYS[1], 'count', ARGV[1], 'sum', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

// RedisAggregateCache keeps (count, sum) hashes with a TTL next to a
// per-entity generation counter. Within one generation the stored review
// count only grows, so Set keeps the highest count it has seen.
type RedisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAggregateCache(client *redis.Client, ttl time.Duration) *RedisAggregateCache {
	return &RedisAggregateCache{client: client, ttl: ttl}
}

func (c *RedisAggregateCache) Get(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, bool, error) {
	vals, err := c.client.HMGet(ctx, aggregateKey(entityType, entityID), "count", "sum").Result()
	if err != nil {
		return review.Aggregate{}, false, errs.Wrap(err, "failed to read rating aggregate from cache")
	}
	if len(vals) != 2 || (vals[0] == nil && vals[1] == nil) {
		return review.Aggregate{}, false, nil
	}

	count, cerr := parseField(vals[0])
	sum, serr := parseField(vals[1])
	if cerr != nil || serr != nil {
		return review.Aggregate{}, false, errCorruptEntry
	}
	return review.Aggregate{Count: count, Sum: sum}, true, nil
}

func (c *RedisAggregateCache) Generation(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(entityType, entityID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "failed to read rating aggregate generation")
	}
	return gen, nil
}

// Set is a no-op when the entry already holds a higher count or the
// generation has advanced past the caller's.
func (c *RedisAggregateCache) Set(ctx context.Context, entityType resource.Kind, entityID uuid.UUID, agg review.Aggregate, generation int64) error {
	keys := []string{aggregateKey(entityType, entityID), generationKey(entityType, entityID)}
	err := setAggregateScript.Run(ctx, c.client, keys, agg.Count, agg.Sum, generation, c.ttl.Milliseconds()).Err()
	if err != nil {
		return errs.Wrap(err, "failed to write rating aggregate to cache")
	}
	return nil
}

func (c *RedisAggregateCache) Invalidate(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(entityType, entityID))
		pipe.Del(ctx, aggregateKey(entityType, entityID))
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to invalidate rating aggregate")
	}
	return nil
}

func parseField(v interface{}) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, errCorruptEntry
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, errCorruptEntry
	}
	return n, nil
}

func aggregateKey(entityType resource.Kind, entityID uuid.UUID) string {
	return aggregateKeyPrefix + entityType.String() + ":" + entityID.String()
}

func generationKey(entityType resource.Kind, entityID uuid.UUID) string {
	return generationKeyPrefix + entityType.String() + ":" + entityID.String()
}

// NoopAggregateCache always misses. Used when Redis is disabled.
type NoopAggregateCache struct{}

func NewNoopAggregateCache() NoopAggregateCache { return NoopAggregateCache{} }

func (NoopAggregateCache) Get(context.Context, resource.Kind, uuid.UUID) (review.Aggregate, bool, error) {
	return review.Aggregate{}, false, nil
}

func (NoopAggregateCache) Generation(context.Context, resource.Kind, uuid.UUID) (int64, error) {
	return 0, nil
}

func (NoopAggregateCache) Set(context.Context, resource.Kind, uuid.UUID, review.Aggregate, int64) error {
	return nil
}

func (NoopAggregateCache) Invalidate(context.Context, resource.Kind, uuid.UUID) error {
	return nil
}
