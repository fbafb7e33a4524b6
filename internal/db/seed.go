package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with demo trips at different stages
// so progress views have something to show.
func SeedFixtures(conn *sql.DB) error {
	route := []string{"assigned_to_driver", "carrier_accepted", "started_for_pickup", "in_transit", "offloaded", "delivered"}

	trips := []struct {
		id, reference, description, status string
		fulfilled                          int // number of route legs fulfilled
	}{
		{"TRIP-001", "PO-1001", "Apapa port to Ikeja warehouse", "active", 2},
		{"TRIP-002", "PO-1002", "Kano depot to Abuja", "active", 4},
		{"TRIP-003", "PO-1003", "Onitsha market restock", "delivered", 6},
	}

	for _, t := range trips {
		if _, err := conn.Exec(
			"INSERT INTO trips (id, reference, description, status) VALUES (?, ?, ?, ?)",
			t.id, t.reference, t.description, t.status,
		); err != nil {
			return fmt.Errorf("seed trips: %w", err)
		}
		if t.status == "delivered" {
			if _, err := conn.Exec("UPDATE trips SET delivered_at = CURRENT_TIMESTAMP WHERE id = ?", t.id); err != nil {
				return fmt.Errorf("seed trips: %w", err)
			}
		}

		for i, name := range route {
			fulfilled := i < t.fulfilled
			var fulfilledAt any
			if fulfilled {
				fulfilledAt = "2026-01-15 09:00:00"
			}
			if _, err := conn.Exec(
				"INSERT INTO trip_legs (trip_id, name, position, fulfilled, fulfilled_at) VALUES (?, ?, ?, ?, ?)",
				t.id, name, i, fulfilled, fulfilledAt,
			); err != nil {
				return fmt.Errorf("seed legs: %w", err)
			}
		}
	}

	return nil
}
