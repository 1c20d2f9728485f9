// store_test.go provides shared test infrastructure for store integration
// tests. Tests are skipped when PostgreSQL is unavailable.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"richgradstudent/internal/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "richgradstudent")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "richgradstudent")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanContent removes test content rows by slug prefix.
func cleanContent(t *testing.T, db *sql.DB, slugPrefix string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM content WHERE slug LIKE $1", slugPrefix+"%"); err != nil {
		t.Fatalf("clean content: %v", err)
	}
}

// cleanSubscribers removes test subscriber rows by email prefix.
func cleanSubscribers(t *testing.T, db *sql.DB, emailPrefix string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM subscribers WHERE email LIKE $1", emailPrefix+"%"); err != nil {
		t.Fatalf("clean subscribers: %v", err)
	}
}
