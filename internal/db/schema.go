package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it through GetSchemaSQL() instead of declaring their own
// tables, so a column referenced by code but missing here fails at test
// time with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Trips (one shipment journey)
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

-- Trip legs (at most one per status per trip)
CREATE TABLE IF NOT EXISTS trip_legs (
	trip_id TEXT NOT NULL,
	name TEXT NOT NULL CHECK(name IN ('assigned_to_driver', 'carrier_accepted', 'started_for_pickup', 'in_transit', 'offloaded', 'delivered')),
	position INTEGER NOT NULL,
	fulfilled INTEGER NOT NULL DEFAULT 0,
	fulfilled_at DATETIME,
	PRIMARY KEY (trip_id, name),
	FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);

-- Trip events (audit trail)
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
`

// InitSchema brings the database up to date.
// A fresh database gets SchemaSQL directly and every migration is marked
// as applied; an existing one runs any pending migrations.
func InitSchema(conn *sql.DB) error {
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(conn)
	}

	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(conn); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
