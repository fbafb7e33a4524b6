// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/example/tripline/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTrip inserts a test trip and returns its ID.
func seedTrip(t *testing.T, db *sql.DB, id, reference string) string {
	t.Helper()
	if id == "" {
		id = "TRIP-001"
	}
	if reference == "" {
		reference = "PO-1001"
	}
	_, err := db.Exec("INSERT INTO trips (id, reference, status) VALUES (?, ?, 'active')", id, reference)
	if err != nil {
		t.Fatalf("failed to seed trip: %v", err)
	}
	return id
}

// seedLeg inserts a test leg for a trip.
func seedLeg(t *testing.T, db *sql.DB, tripID, name string, position int, fulfilled bool) {
	t.Helper()
	_, err := db.Exec("INSERT INTO trip_legs (trip_id, name, position, fulfilled) VALUES (?, ?, ?, ?)",
		tripID, name, position, fulfilled)
	if err != nil {
		t.Fatalf("failed to seed leg: %v", err)
	}
}
