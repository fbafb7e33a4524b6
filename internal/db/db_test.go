package db

import (
	"database/sql"
	"testing"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func schemaVersion(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var v int
	if err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	return v
}

func tableExists(t *testing.T, conn *sql.DB, name string) bool {
	t.Helper()
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&n); err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	return n > 0
}

func TestInitSchema_FreshInstall(t *testing.T) {
	conn := openMemory(t)

	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	for _, table := range []string{"trips", "trip_legs", "trip_events"} {
		if !tableExists(t, conn, table) {
			t.Errorf("expected table %s to exist", table)
		}
	}
	if v := schemaVersion(t, conn); v != LatestVersion() {
		t.Errorf("expected schema version %d, got %d", LatestVersion(), v)
	}

	// Running again is a no-op
	if err := InitSchema(conn); err != nil {
		t.Fatalf("second InitSchema failed: %v", err)
	}
}

func TestRunMigrations_UpgradesOldDatabase(t *testing.T) {
	conn := openMemory(t)

	// Simulate a database created before trip events existed
	if err := createVersionTable(conn); err != nil {
		t.Fatalf("createVersionTable failed: %v", err)
	}
	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := migrationV1(tx); err != nil {
		t.Fatalf("migrationV1 failed: %v", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (1)"); err != nil {
		t.Fatalf("failed to record version: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if tableExists(t, conn, "trip_events") {
		t.Fatal("trip_events should not exist before migration")
	}

	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	if !tableExists(t, conn, "trip_events") {
		t.Error("expected trip_events after migration")
	}
	if v := schemaVersion(t, conn); v != 2 {
		t.Errorf("expected schema version 2, got %d", v)
	}
}

func TestSeedFixtures(t *testing.T) {
	conn := openMemory(t)
	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	if err := SeedFixtures(conn); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	var trips, legs int
	conn.QueryRow("SELECT COUNT(*) FROM trips").Scan(&trips)
	conn.QueryRow("SELECT COUNT(*) FROM trip_legs").Scan(&legs)
	if trips != 3 {
		t.Errorf("expected 3 trips, got %d", trips)
	}
	if legs != 18 {
		t.Errorf("expected 18 legs, got %d", legs)
	}
}

func TestForeignKeysCascade(t *testing.T) {
	conn := openMemory(t)
	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}
	if err := SeedFixtures(conn); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	if _, err := conn.Exec("DELETE FROM trips WHERE id = 'TRIP-001'"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var legs int
	conn.QueryRow("SELECT COUNT(*) FROM trip_legs WHERE trip_id = 'TRIP-001'").Scan(&legs)
	if legs != 0 {
		t.Errorf("expected legs to cascade, got %d remaining", legs)
	}
}
