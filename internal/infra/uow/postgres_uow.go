package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/infra/readstore"
	"reservation-hub/internal/infra/repository"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	"reservation-hub/internal/pkg/config"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.Class("transaction failed after max retries", errs.ErrTransient)
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries

	lockTimeout      time.Duration
	statementTimeout time.Duration
	maxRetries       int
	retryBase        time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:             pool,
		q:                q,
		lockTimeout:      cfg.LockTimeout,
		statementTimeout: cfg.StatementTimeout,
		maxRetries:       cfg.MaxTxRetries,
		retryBase:        cfg.RetryBaseDelay,
	}
}

// ReadCommitted is enough: every admission decision is a single conditional
// write that serializes on the row it touches.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			if isRetryableError(err) && attempt < u.maxRetries {
				if werr := u.wait(ctx, attempt, err); werr != nil {
					return werr
				}
				continue
			}
			return u.exhausted(errs.Mark(err, errTransactionBegin), attempt)
		}

		err = u.applyTimeouts(ctx, pgxTx)
		if err == nil {
			tx := &pgTx{
				dbtx: pgxTx,
				uow:  u,
			}

			err = fn(ctx, tx)
			if err == nil {
				if err = pgxTx.Commit(ctx); err == nil {
					return nil
				}
				err = errs.Mark(err, errTransactionCommit)
			}
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.WarnContext(ctx, "rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			return u.exhausted(err, attempt)
		}

		if werr := u.wait(ctx, attempt, err); werr != nil {
			return werr
		}
	}

	return errMaxRetriesExceeded
}

// applyTimeouts bounds how long this transaction may wait on a row lock.
// set_config with is_local=true is SET LOCAL and dies with the transaction.
func (u *PostgresUoW) applyTimeouts(ctx context.Context, tx pgx.Tx) error {
	if u.lockTimeout <= 0 && u.statementTimeout <= 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		"SELECT set_config('lock_timeout', $1, true), set_config('statement_timeout', $2, true)",
		pgDuration(u.lockTimeout), pgDuration(u.statementTimeout),
	)
	return err
}

// exhausted marks a retryable failure that ran out of attempts as transient so
// callers can tell the client to come back later.
func (u *PostgresUoW) exhausted(err error, attempt int) error {
	if !isRetryableError(err) {
		return err
	}
	slog.Error("transaction failed after max retries",
		"attempts", attempt+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

func (u *PostgresUoW) wait(ctx context.Context, attempt int, cause error) error {
	waitTime := calculateBackoff(attempt, u.retryBase)

	slog.WarnContext(ctx, "retrying transaction due to retryable error",
		"attempt", attempt+1,
		"wait_ms", waitTime.Milliseconds(),
		"error", cause.Error())

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(waitTime):
		return nil
	}
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.WarnContext(ctx, "failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func pgDuration(d time.Duration) string {
	// 0 disables the timeout in postgres
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
			return true
		default:
			return false
		}
	}

	// connection-level failures where the server never saw the statement
	return pgconn.SafeToRetry(err)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	resourceRepo  shared.ResourceRepository
	bookingRepo   shared.BookingRepository
	capacityRepo  shared.CapacityRepository
	reviewRepo    shared.ReviewRepository
	aggregateRepo shared.RatingAggregateRepository
	outboxRepo    shared.OutboxRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q, t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Capacity() shared.CapacityRepository {
	if t.capacityRepo == nil {
		t.capacityRepo = repository.NewCapacityRepository(t.uow.q, t.dbtx)
	}
	return t.capacityRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.uow.q, t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) RatingAggregates() shared.RatingAggregateRepository {
	if t.aggregateRepo == nil {
		t.aggregateRepo = repository.NewRatingAggregateRepository(t.uow.q, t.dbtx)
	}
	return t.aggregateRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	resourceStore *readstore.ResourceReadStore
	bookingStore  *readstore.BookingReadStore
}

func (r *commandReads) resources() *readstore.ResourceReadStore {
	if r.resourceStore == nil {
		r.resourceStore = readstore.NewResourceReadStore(r.uow.q, r.dbtx)
	}
	return r.resourceStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	res, err := r.resources().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ResourceSnapshot{
		ID:            res.ID,
		Kind:          res.Kind,
		Name:          res.Name,
		OwnerID:       res.OwnerID,
		CapacityTotal: res.CapacityTotal,
		TimeUnits:     res.TimeUnits,
		CreatedAt:     res.CreatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, err := r.bookings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookingSnapshot(b.ID, b.ResourceID, b.TimeUnit, b.Quantity, b.UserID, b.Status), nil
}

func (r *commandReads) BookingByIdempotencyKey(ctx context.Context, userID, key uuid.UUID) (*shared.BookingSnapshot, error) {
	b, err := r.bookings().FindByIdempotencyKey(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	return toBookingSnapshot(b.ID, b.ResourceID, b.TimeUnit, b.Quantity, b.UserID, b.Status), nil
}

func toBookingSnapshot(id, resourceID uuid.UUID, timeUnit string, quantity int, userID uuid.UUID, status string) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         id,
		ResourceID: resourceID,
		TimeUnit:   timeUnit,
		Quantity:   quantity,
		UserID:     userID,
		Status:     booking.Status(status),
	}
}
