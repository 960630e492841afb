package sqlite

import (
	"fmt"
	"net/url"
	"testing"

	"passkeeper/internal/infrastructure/migration"
)

// setupTestDB creates a named shared in-memory database with the schema applied.
// The name derived from t.Name() isolates parallel tests.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)",
		url.PathEscape(t.Name()),
	)

	db, err := NewDB(DriverPure, dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := migration.NewMigration(migration.DialectSQLite, dsn, migration.DefaultEngine).Up(); err != nil {
		_ = db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}
