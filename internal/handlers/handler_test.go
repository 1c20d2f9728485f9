// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Integration tests are skipped when PostgreSQL is unavailable; handlers
// whose paths never reach the database are tested directly.
package handlers

import (
	"database/sql"
	"os"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"richgradstudent/internal/database"
	"richgradstudent/internal/recommend"
	"richgradstudent/internal/search"
	"richgradstudent/internal/store"
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

	t.Cleanup(func() {
		db.Exec(`DELETE FROM content WHERE slug LIKE 'hndl-%'`)
		db.Exec(`DELETE FROM subscribers WHERE email LIKE 'hndl-%'`)
		db.Close()
	})

	return db
}

// newTestAPI builds an API wired to the test database, an in-memory search
// index, and no cache or storage.
func newTestAPI(t *testing.T) (*API, *sql.DB) {
	t.Helper()

	db := testDB(t)

	idx, err := search.OpenMemory()
	if err != nil {
		t.Fatalf("search index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	contents := store.NewContentStore(db)
	cards := store.NewCardStore(db)
	subscribers := store.NewSubscriberStore(db)
	engine := recommend.New(contents)

	api := NewAPI(contents, cards, subscribers, engine, idx, nil, nil, "https://therichgradstudent.com")
	return api, db
}

// searchOnlyAPI builds an API with just an in-memory search index, for
// handlers that never touch the database.
func searchOnlyAPI(t *testing.T) *API {
	t.Helper()

	idx, err := search.OpenMemory()
	if err != nil {
		t.Fatalf("search index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	return &API{search: idx, siteURL: "https://therichgradstudent.com"}
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}
