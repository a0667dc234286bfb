//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"reservation-hub/cmd/bootstrap"
	"reservation-hub/cmd/bootstrap/components"
	"reservation-hub/internal/infra/db"
	"reservation-hub/internal/pkg/config"
	"reservation-hub/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser      = "test"
	testPassword  = "testpass"
	postgresPort  = nat.Port("5432/tcp")
	redisPort     = nat.Port("6379/tcp")
	migrationFile = "migrations/001_initial_schema.sql"
)

var (
	postgresOnce sync.Once
	postgresAddr string
	postgresErr  error

	redisOnce sync.Once
	redisAddr string
	redisErr  error
)

// SharedSuite builds one app per suite against its own database.
// Set WithCache before SetupSuite to run with the Redis aggregate cache.
type SharedSuite struct {
	suite.Suite
	Router    *gin.Engine
	DB        *pgxpool.Pool
	Config    config.Config
	WithCache bool
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := prepareDatabase(t)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	// 同一ユーザーから大量に投げるテストがあるため無効化
	cfg.RateLimit.Enabled = false
	if s.WithCache {
		cfg.Redis.Enabled = true
		cfg.Redis.Addr = containerAddr(t, &redisOnce, &redisAddr, &redisErr, redisRequest(), redisPort)
	}

	s.Router = buildApp(t, pool, cfg)
	s.DB = pool
	s.Config = cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

// prepareDatabase creates a fresh database per suite so suites can run in parallel.
func prepareDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	addr := containerAddr(t, &postgresOnce, &postgresAddr, &postgresErr, postgresRequest(), postgresPort)
	host, port, _ := strings.Cut(addr, ":")
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", testUser, testPassword, addr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// CREATE DATABASE は並列実行で template1 のロック競合になることがある
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+dbName); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port,
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		// 同時予約テストでプールが枯渇しないように
		MaxConns:         30,
		MinConns:         1,
		LockTimeout:      2 * time.Second,
		StatementTimeout: 5 * time.Second,
		MaxTxRetries:     5,
		RetryBaseDelay:   10 * time.Millisecond,
	}

	pool, closePool, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	schema, err := os.ReadFile(findMigration(t))
	require.NoError(t, err)
	_, err = pool.Exec(context.Background(), string(schema))
	require.NoError(t, err, "データベースマイグレーションに失敗")

	return pool, dbConfig
}

// findMigration walks up from the package directory `go test` runs in.
func findMigration(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		candidate := filepath.Join(dir, migrationFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "migration file not found")
		dir = parent
	}
}

// buildApp wires the HTTP stack without the outbox relay or the tracer, so
// outbox rows stay pending and can be asserted on.
func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
			bootstrap.NewDBConfig,
		),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.IdentityModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// containerAddr starts the container once per test binary and returns host:port.
// Ryuk removes it when the process exits.
func containerAddr(t *testing.T, once *sync.Once, addr *string, startErr *error, req testcontainers.ContainerRequest, port nat.Port) string {
	t.Helper()
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			*startErr = err
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			*startErr = err
			return
		}
		mapped, err := c.MappedPort(ctx, port)
		if err != nil {
			*startErr = err
			return
		}
		*addr = host + ":" + mapped.Port()
	})
	require.NoError(t, *startErr, "コンテナの起動に失敗")
	return *addr
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		// PostgreSQLデータをRAMに載せてI/O削減
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForListeningPort(redisPort).WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}
