package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tripline/internal/ports/secondary"
)

// TripEventRepository implements secondary.TripEventRepository with SQLite.
type TripEventRepository struct {
	db *sql.DB
}

// NewTripEventRepository creates a new SQLite trip event repository.
func NewTripEventRepository(db *sql.DB) *TripEventRepository {
	return &TripEventRepository{db: db}
}

// Create persists a new event.
func (r *TripEventRepository) Create(ctx context.Context, event *secondary.TripEventRecord) error {
	var leg, actor sql.NullString
	if event.Leg != "" {
		leg = sql.NullString{String: event.Leg, Valid: true}
	}
	if event.Actor != "" {
		actor = sql.NullString{String: event.Actor, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO trip_events (id, trip_id, action, leg, actor) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.TripID, event.Action, leg, actor,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip event: %w", err)
	}

	return nil
}

// ListByTrip retrieves a trip's events, oldest first.
func (r *TripEventRepository) ListByTrip(ctx context.Context, tripID string) ([]*secondary.TripEventRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, trip_id, action, leg, actor, created_at FROM trip_events WHERE trip_id = ? ORDER BY created_at, id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.TripEventRecord
	for rows.Next() {
		var (
			leg       sql.NullString
			actor     sql.NullString
			createdAt time.Time
		)
		record := &secondary.TripEventRecord{}
		if err := rows.Scan(&record.ID, &record.TripID, &record.Action, &leg, &actor, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip event: %w", err)
		}
		record.Leg = leg.String
		record.Actor = actor.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		events = append(events, record)
	}

	return events, rows.Err()
}

// GetNextID returns the next available event ID.
func (r *TripEventRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM trip_events",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next event ID: %w", err)
	}

	return fmt.Sprintf("EVT-%04d", maxID+1), nil
}
