// Package repotest opens throwaway stores for tests.
package repotest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inventory-rest-api/internal/repository"
)

// MemoryDSN is an in-memory SQLite database with foreign keys enforced.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"

// New opens a migrated in-memory SQLite store that is closed when the test ends.
func New(t testing.TB) *repository.SQLStore {
	t.Helper()

	store, err := repository.Open(context.Background(), repository.Options{
		Dialect: repository.DialectSQLite,
		DSN:     MemoryDSN,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate store: %v", err)
	}
	return store
}
