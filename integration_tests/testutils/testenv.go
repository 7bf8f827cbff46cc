package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/tripsit/tripsit-api/app/schema"
	"github.com/tripsit/tripsit-api/integration_tests/containers"
	"github.com/tripsit/tripsit-api/internal/db/bundb"
	"github.com/tripsit/tripsit-api/internal/ledger"
	"github.com/tripsit/tripsit-api/internal/observability"
	"github.com/uptrace/bun"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// TestEnvironment is one migrated Postgres shared by every test in a package.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DSN         string
	DB          *bun.DB
	Obs         *observability.Observability
	Ledger      *ledger.Ledger
}

var (
	envOnce   sync.Once
	sharedEnv *TestEnvironment
	envErr    error
)

// GetTestEnvironment starts the container on first use and empties every
// application table before returning.
func GetTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	envOnce.Do(func() {
		sharedEnv, envErr = newTestEnvironment(context.Background())
	})
	if envErr != nil {
		t.Fatalf("failed to set up test environment: %v", envErr)
	}

	if err := CleanupDatabase(sharedEnv.Ctx, sharedEnv.DB); err != nil {
		t.Fatalf("failed to clean database: %v", err)
	}
	return sharedEnv
}

func newTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}

	db := bundb.BunDB(sqlDB)
	obs := observability.NewNoop()
	l := schema.NewLedger(db, obs.Logger)

	if err := l.Init(ctx); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	if _, err := l.Migrate(ctx); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DSN:         dsn,
		DB:          db,
		Obs:         obs,
		Ledger:      l,
	}, nil
}

// Shutdown closes the pool and stops the container. Call it from TestMain.
func Shutdown() {
	if sharedEnv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = sharedEnv.DB.Close()
	_ = sharedEnv.PgContainer.Terminate(ctx)
}
