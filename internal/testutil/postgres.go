// Package testutil holds helpers for tests that need a real postgres.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"codeberg.org/askayo/server/internal/storage"
)

// TEST_DATABASE_URL points at a disposable database; every table is truncated
const DatabaseURLEnv = "TEST_DATABASE_URL"

// serialises packages that share the test database when go test runs them in parallel
const lockKey = 7_140_912

var tables = []string{
	"analytics_daily",
	"missing_terms",
	"ai_rewrites",
	"feedback",
	"term_lookups",
	"users",
}

// returns a migrated, empty database or skips the test when none is configured
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(DatabaseURLEnv)
	if url == "" {
		t.Skipf("skipping database test: %s not set", DatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, storage.Migrate(url))

	db, err := storage.Open(ctx, url, storage.DefaultPoolOptions())
	require.NoError(t, err)

	lock, err := db.Acquire(ctx)
	require.NoError(t, err)

	_, err = lock.Exec(ctx, "SELECT pg_advisory_lock($1)", lockKey)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = lock.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", lockKey)
		lock.Release()
		db.Close()
	})

	Truncate(t, db)

	return db
}

// empties every application table
func Truncate(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	for _, table := range tables {
		_, err := db.Exec(context.Background(), "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE")
		require.NoError(t, err)
	}
}
