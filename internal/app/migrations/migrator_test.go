package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkurunziza/erinda/internal/db"
)

// These tests need a real postgres; they skip when no test database is
// configured.

func openTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()
	url := os.Getenv("ERINDA_TEST_DB")
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		t.Skip("ERINDA_TEST_DB or DATABASE_URL not set")
		return nil
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Skipf("db unavailable: %v", err)
		return nil
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Skipf("db unavailable: %v", err)
		return nil
	}
	return &db.PostgresDB{Pool: pool}
}

func isVersionRecorded(t *testing.T, database *db.PostgresDB, version string) bool {
	t.Helper()
	var exists bool
	err := database.Pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		t.Fatalf("query schema_migrations: %v", err)
	}
	return exists
}

func TestMigrationAppliedOnceAndRecorded(t *testing.T) {
	database := openTestDB(t)
	if database == nil {
		return
	}
	defer database.Close()

	version := fmt.Sprintf("t%d", time.Now().UnixNano())
	table := "mig_" + version
	dir := t.TempDir()
	path := filepath.Join(dir, version+"_create.sql")
	sql := fmt.Sprintf("CREATE TABLE %s (id BIGINT);", table)
	if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	defer database.Pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+table)
	defer database.Pool.Exec(context.Background(),
		"DELETE FROM schema_migrations WHERE version = $1", version)

	m := NewMigrator(database)
	if err := m.MigrateFromDirectory(dir); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	if !isVersionRecorded(t, database, version) {
		t.Fatalf("expected version %s recorded", version)
	}

	// Second run skips the already-applied file
	if err := m.MigrateFromDirectory(dir); err != nil {
		t.Fatalf("re-run error: %v", err)
	}
}

func TestFailedMigrationRecordsNothing(t *testing.T) {
	database := openTestDB(t)
	if database == nil {
		return
	}
	defer database.Close()

	version := fmt.Sprintf("b%d", time.Now().UnixNano())
	dir := t.TempDir()
	path := filepath.Join(dir, version+"_broken.sql")
	if err := os.WriteFile(path, []byte("CREATE TABLE;"), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}

	m := NewMigrator(database)
	if err := m.MigrateFromDirectory(dir); err == nil {
		t.Fatalf("expected broken migration to fail")
	}

	// The transaction rolled back, so the version must not be recorded
	if isVersionRecorded(t, database, version) {
		t.Fatalf("failed migration must not be recorded")
	}
}
