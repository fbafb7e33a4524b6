// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/tripline/internal/ports/secondary"
)

const tripColumns = "id, reference, description, status, created_at, updated_at, delivered_at"

// TripRepository implements secondary.TripRepository with SQLite.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new SQLite trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *secondary.TripRecord) error {
	var desc sql.NullString
	if trip.Description != "" {
		desc = sql.NullString{String: trip.Description, Valid: true}
	}

	status := trip.Status
	if status == "" {
		status = "active"
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO trips (id, reference, description, status) VALUES (?, ?, ?, ?)",
		trip.ID, trip.Reference, desc, status,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// GetByID retrieves a trip by its ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*secondary.TripRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+tripColumns+" FROM trips WHERE id = ?", id)

	record, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", secondary.ErrTripNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return record, nil
}

// List retrieves trips matching the given filters, newest first.
func (r *TripRepository) List(ctx context.Context, filters secondary.TripFilters) ([]*secondary.TripRecord, error) {
	query := "SELECT " + tripColumns + " FROM trips WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*secondary.TripRecord
	for rows.Next() {
		record, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, record)
	}

	return trips, rows.Err()
}

// UpdateStatus sets a trip's status. delivered_at is stamped when
// setDelivered is true and cleared otherwise.
func (r *TripRepository) UpdateStatus(ctx context.Context, id, status string, setDelivered bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trips SET status = ?, updated_at = CURRENT_TIMESTAMP,
			delivered_at = CASE WHEN ? THEN CURRENT_TIMESTAMP ELSE NULL END
		WHERE id = ?`,
		status, setDelivered, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", secondary.ErrTripNotFound, id)
	}

	return nil
}

// Delete removes a trip. Legs and events go with it via ON DELETE CASCADE.
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", secondary.ErrTripNotFound, id)
	}

	return nil
}

// GetNextID returns the next available trip ID.
func (r *TripRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM trips",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next trip ID: %w", err)
	}

	return fmt.Sprintf("TRIP-%03d", maxID+1), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*secondary.TripRecord, error) {
	var (
		desc        sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
		deliveredAt sql.NullTime
	)

	record := &secondary.TripRecord{}
	err := row.Scan(&record.ID, &record.Reference, &desc, &record.Status, &createdAt, &updatedAt, &deliveredAt)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	if deliveredAt.Valid {
		record.DeliveredAt = deliveredAt.Time.Format(time.RFC3339)
	}

	return record, nil
}
