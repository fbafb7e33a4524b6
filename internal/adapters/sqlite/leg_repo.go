package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tripline/internal/ports/secondary"
)

// LegRepository implements secondary.LegRepository with SQLite.
type LegRepository struct {
	db *sql.DB
}

// NewLegRepository creates a new SQLite leg repository.
func NewLegRepository(db *sql.DB) *LegRepository {
	return &LegRepository{db: db}
}

// CreateBatch persists a trip's legs in a single transaction.
// The (trip_id, name) primary key rejects duplicate statuses.
func (r *LegRepository) CreateBatch(ctx context.Context, tripID string, names []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, name := range names {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO trip_legs (trip_id, name, position) VALUES (?, ?, ?)",
			tripID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to create leg %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit legs: %w", err)
	}
	return nil
}

// ListByTrip retrieves a trip's legs in route order.
func (r *LegRepository) ListByTrip(ctx context.Context, tripID string) ([]*secondary.LegRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT trip_id, name, position, fulfilled, fulfilled_at FROM trip_legs WHERE trip_id = ? ORDER BY position",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list legs: %w", err)
	}
	defer rows.Close()

	var legs []*secondary.LegRecord
	for rows.Next() {
		var fulfilledAt sql.NullTime
		record := &secondary.LegRecord{}
		if err := rows.Scan(&record.TripID, &record.Name, &record.Position, &record.Fulfilled, &fulfilledAt); err != nil {
			return nil, fmt.Errorf("failed to scan leg: %w", err)
		}
		if fulfilledAt.Valid {
			record.FulfilledAt = fulfilledAt.Time.Format(time.RFC3339)
		}
		legs = append(legs, record)
	}

	return legs, rows.Err()
}

// SetFulfilled updates one leg's fulfilled flag and touches the trip.
func (r *LegRepository) SetFulfilled(ctx context.Context, tripID, name string, fulfilled bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trip_legs SET fulfilled = ?,
			fulfilled_at = CASE WHEN ? THEN CURRENT_TIMESTAMP ELSE NULL END
		WHERE trip_id = ? AND name = ?`,
		fulfilled, fulfilled, tripID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to update leg: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("trip %s has no %s leg", tripID, name)
	}

	if _, err := r.db.ExecContext(ctx, "UPDATE trips SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", tripID); err != nil {
		return fmt.Errorf("failed to touch trip: %w", err)
	}

	return nil
}
