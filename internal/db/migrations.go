package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trips_and_legs",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_trip_events",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(conn *sql.DB) error {
	if err := createVersionTable(conn); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// LatestVersion returns the highest known migration version.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

func createVersionTable(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// migrationV1 creates the trips and trip_legs tables
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS trips (
			id TEXT PRIMARY KEY,
			reference TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL CHECK(status IN ('active', 'delivered', 'cancelled')) DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			delivered_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_trips_status ON trips(status);
		CREATE TABLE IF NOT EXISTS trip_legs (
			trip_id TEXT NOT NULL,
			name TEXT NOT NULL CHECK(name IN ('assigned_to_driver', 'carrier_accepted', 'started_for_pickup', 'in_transit', 'offloaded', 'delivered')),
			position INTEGER NOT NULL,
			fulfilled INTEGER NOT NULL DEFAULT 0,
			fulfilled_at DATETIME,
			PRIMARY KEY (trip_id, name),
			FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
		);
	`)
	return err
}

// migrationV2 adds the trip_events audit table
func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS trip_events (
			id TEXT PRIMARY KEY,
			trip_id TEXT NOT NULL,
			action TEXT NOT NULL CHECK(action IN ('create', 'fulfill', 'reopen', 'cancel')),
			leg TEXT,
			actor TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_trip_events_trip ON trip_events(trip_id);
	`)
	return err
}
